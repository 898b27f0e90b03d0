package vision

import (
	"bufio"
	"errors"
	"net"
	"sync"

	"github.com/arloliu/go-vision/logger"
)

// Client owns a single TCP connection to a machine-vision controller and
// exposes one method per controller command.
//
// The protocol allows at most one in-flight request per connection, so every
// operation holds an internal mutex for the whole exchange, including the
// trigger operation's second read. A Client is safe for use from multiple
// goroutines; calls are serialized.
//
// The connection is never re-established automatically. After a transport
// fault the caller decides whether to Close and build a new client.
type Client struct {
	cfg    *ConnectionConfig
	logger logger.Logger

	// exchangeMutex serializes whole command exchanges.
	exchangeMutex sync.Mutex

	// TCP resources.
	connMutex sync.RWMutex
	tcpConn   net.Conn
	reader    *bufio.Reader

	metrics ClientMetrics
}

// NewClient creates a new Client for the controller endpoint described by cfg.
//
// The client starts disconnected; call Open to establish the connection.
func NewClient(cfg *ConnectionConfig) (*Client, error) {
	if cfg == nil {
		return nil, ErrConnConfigNil
	}

	c := &Client{
		cfg:    cfg,
		logger: cfg.logger,
	}
	c.metrics.init()

	return c, nil
}

// Open establishes the TCP connection to the controller.
//
// It dials with the configured connect timeout and does not retry. Calling
// Open on an already-open client returns ErrAlreadyConnected.
func (c *Client) Open() error {
	c.connMutex.Lock()
	defer c.connMutex.Unlock()

	if c.tcpConn != nil {
		return ErrAlreadyConnected
	}

	addr := c.cfg.RemoteAddr()

	conn, err := net.DialTimeout("tcp", addr, c.cfg.connectTimeout)
	if err != nil {
		c.logger.Error("vision: failed to connect to controller", "remoteAddr", addr, "error", err)

		return err
	}

	c.tcpConn = conn
	c.reader = bufio.NewReaderSize(conn, c.cfg.maxFrameSize)

	c.logger.Debug("vision: connected to controller", "remoteAddr", addr)

	return nil
}

// Close releases the connection.
//
// It shuts down the write half first, then closes the socket. Close is
// idempotent: calling it on a client that was never opened, or calling it
// repeatedly, returns nil.
func (c *Client) Close() error {
	c.connMutex.Lock()
	conn := c.tcpConn
	if conn == nil {
		c.connMutex.Unlock()

		return nil
	}

	// Nil the reference under the write lock so subsequent calls are no-ops.
	c.tcpConn = nil
	c.reader = nil
	c.connMutex.Unlock()

	remote := conn.RemoteAddr().String()

	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}

	if err := conn.Close(); err != nil && !isConnClosedError(err) {
		c.logger.Error("vision: failed to close connection", "remoteAddr", remote, "error", err)

		return err
	}

	c.logger.Debug("vision: connection closed", "remoteAddr", remote)

	return nil
}

// IsConnected reports whether the client currently holds an open connection.
func (c *Client) IsConnected() bool {
	c.connMutex.RLock()
	defer c.connMutex.RUnlock()

	return c.tcpConn != nil
}

// GetLogger returns the logger associated with the client.
func (c *Client) GetLogger() logger.Logger {
	return c.logger
}

// GetMetrics returns the metrics associated with the client.
func (c *Client) GetMetrics() *ClientMetrics {
	return &c.metrics
}

func (c *Client) getTCPConn() (net.Conn, *bufio.Reader) {
	c.connMutex.RLock()
	defer c.connMutex.RUnlock()

	return c.tcpConn, c.reader
}

// --- Helpers ---

func isConnClosedError(err error) bool {
	return errors.Is(err, net.ErrClosed)
}

func isTimeoutError(err error) bool {
	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
