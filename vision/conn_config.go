package vision

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/go-vision/logger"
)

// ConnectionConfig represents the configuration parameters for a connection
// to a machine-vision controller.
type ConnectionConfig struct {
	// host specifies the host of the controller.
	host string

	// port specifies the TCP port number of the controller's command server.
	port int

	// connectTimeout defines the timeout for establishing the TCP connection.
	// Defaults to 3 seconds.
	connectTimeout time.Duration

	// readTimeout defines how long a receive waits for a reply frame before
	// the exchange reports StatusTimeout. It applies to every read, including
	// the trigger operation's data frame.
	// Defaults to 5 seconds.
	readTimeout time.Duration

	// writeTimeout defines the timeout for writing a command frame.
	// Defaults to 2 seconds.
	writeTimeout time.Duration

	// maxFrameSize defines the maximum size of a reply frame in bytes. A
	// frame that fills this buffer without a terminator fails the exchange.
	// Defaults to 1024.
	maxFrameSize int

	// logger provides a logger instance for logging connection events and errors.
	logger logger.Logger
}

// NewConnectionConfig creates a new connection configuration with the given
// host, port number, and optional functional options.
//
// It initializes a ConnectionConfig struct with default values and then
// applies the provided options to customize the configuration.
//
// The host parameter specifies the host of the controller.
// The port parameter specifies the TCP port number of the controller's
// command server.
//
// The opts parameter is a variadic argument that accepts a list of ConnOption
// functions to customize the configuration. See the documentation for
// ConnOption and the various WithXXX functions for available options.
//
// Returns a pointer to the initialized ConnectionConfig and an error if any
// occurred during the configuration process.
func NewConnectionConfig(host string, port int, opts ...ConnOption) (*ConnectionConfig, error) {
	cfg := &ConnectionConfig{
		connectTimeout: 3 * time.Second,
		readTimeout:    5 * time.Second,
		writeTimeout:   2 * time.Second,
		maxFrameSize:   1024,
		logger:         logger.GetLogger(),
	}

	if err := withRemoteHost(host).apply(cfg); err != nil {
		return cfg, err
	}

	if err := withPort(port).apply(cfg); err != nil {
		return cfg, err
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// RemoteAddr returns the controller endpoint in host:port form.
func (cfg *ConnectionConfig) RemoteAddr() string {
	return net.JoinHostPort(cfg.host, strconv.Itoa(cfg.port))
}

// ReadTimeout returns the configured reply read timeout.
func (cfg *ConnectionConfig) ReadTimeout() time.Duration {
	return cfg.readTimeout
}

// ConnOption represents a functional option for configuring a ConnectionConfig.
type ConnOption interface {
	apply(*ConnectionConfig) error
}

type connOptFunc struct {
	name      string
	applyFunc func(*ConnectionConfig) error
}

func (c *connOptFunc) apply(cfg *ConnectionConfig) error { return c.applyFunc(cfg) }

func newConnOptFunc(name string, f func(*ConnectionConfig) error) *connOptFunc {
	return &connOptFunc{
		name:      name,
		applyFunc: f,
	}
}

// withRemoteHost sets the host of the controller.
// It returns a ConnOption that validates the host and updates the configuration.
// An error is returned if the configuration is nil.
func withRemoteHost(host string) ConnOption {
	return newConnOptFunc("withRemoteHost", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		// Check if it's a valid IP address
		if ip := net.ParseIP(host); ip != nil {
			cfg.host = host
			return nil
		}

		// If not an IP, check if it's a valid domain name
		host = strings.TrimPrefix(host, ".")
		host = strings.TrimSuffix(host, ".")
		if _, err := net.LookupHost(host); err == nil {
			cfg.host = host
			return nil
		}

		return errors.New("invalid host")
	})
}

// withPort sets the TCP port number of the controller's command server.
// It returns a ConnOption that validates the port number and updates the configuration.
// An error is returned if the port number is out of the valid range (1-65535) or if the configuration is nil.
func withPort(port int) ConnOption {
	return newConnOptFunc("withPort", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		if port < 0 || port > 65535 {
			return errors.New("port is out of range [1, 65535]")
		}
		cfg.port = port

		return nil
	})
}

// WithConnectTimeout sets the timeout for establishing the TCP connection.
// It returns a ConnOption that validates the timeout value and updates the configuration.
// An error is returned if the timeout is outside the valid range (0.1-30 seconds) or if the configuration is nil.
//
// The default value is 3 seconds.
func WithConnectTimeout(val time.Duration) ConnOption {
	return newConnOptFunc("WithConnectTimeout", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		if val < 100*time.Millisecond || val > 30*time.Second {
			return errors.New("connect timeout out of range [0.1, 30]")
		}
		cfg.connectTimeout = val

		return nil
	})
}

// WithReadTimeout sets the reply read timeout applied to every receive,
// including the trigger operation's data frame.
// It returns a ConnOption that validates the timeout value and updates the configuration.
// An error is returned if the timeout is outside the valid range (0.01-120 seconds) or if the configuration is nil.
//
// The default value is 5 seconds.
func WithReadTimeout(val time.Duration) ConnOption {
	return newConnOptFunc("WithReadTimeout", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		if val < 10*time.Millisecond || val > 120*time.Second {
			return errors.New("read timeout out of range [0.01, 120]")
		}
		cfg.readTimeout = val

		return nil
	})
}

// WithWriteTimeout sets the timeout for writing a command frame.
// It returns a ConnOption that validates the timeout value and updates the configuration.
// An error is returned if the timeout is outside the valid range (0.01-30 seconds) or if the configuration is nil.
//
// The default value is 2 seconds.
func WithWriteTimeout(val time.Duration) ConnOption {
	return newConnOptFunc("WithWriteTimeout", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		if val < 10*time.Millisecond || val > 30*time.Second {
			return errors.New("write timeout out of range [0.01, 30]")
		}
		cfg.writeTimeout = val

		return nil
	})
}

// WithMaxFrameSize sets the maximum size of a reply frame in bytes.
// It returns a ConnOption that validates the size and updates the configuration.
// An error is returned if the size is outside the valid range (64-65536 bytes) or if the configuration is nil.
//
// The default value is 1024.
func WithMaxFrameSize(size int) ConnOption {
	return newConnOptFunc("WithMaxFrameSize", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		if size < 64 || size > 65536 {
			return errors.New("max frame size out of range [64, 65536]")
		}
		cfg.maxFrameSize = size

		return nil
	})
}

// WithLogger sets the logger for the connection.
// It returns a ConnOption that updates the configuration with the provided logger.
// An error is returned if the configuration is nil.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) ConnOption {
	return newConnOptFunc("WithLogger", func(cfg *ConnectionConfig) error {
		if cfg == nil {
			return ErrConnConfigNil
		}

		cfg.logger = l

		return nil
	})
}
