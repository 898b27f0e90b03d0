package vision

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// frameTerminator is the sentinel byte marking end-of-frame.
	frameTerminator = '\r'

	// fieldDelimiter separates fields within a frame.
	fieldDelimiter = ","

	// errorMarker is the first token of a controller error reply.
	errorMarker = "ER"
)

// encodeCommand serializes a command into its wire form:
// the tag, comma-joined arguments, and the frame terminator.
func encodeCommand(tag string, args ...string) []byte {
	size := len(tag) + 1
	for _, arg := range args {
		size += len(arg) + 1
	}

	buf := make([]byte, 0, size)
	buf = append(buf, tag...)
	for _, arg := range args {
		buf = append(buf, fieldDelimiter...)
		buf = append(buf, arg...)
	}
	buf = append(buf, frameTerminator)

	return buf
}

// tokenize splits a reply frame on the field delimiter and frame terminator,
// discarding empty trailing tokens produced by the terminator and by the
// trailing comma of a trigger data frame.
func tokenize(frame []byte) []string {
	s := strings.TrimRight(string(frame), string(frameTerminator))
	if s == "" {
		return nil
	}

	tokens := strings.Split(s, fieldDelimiter)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}

// writeFrame writes one complete command frame under the write deadline.
func (c *Client) writeFrame(frame []byte) error {
	conn, _ := c.getTCPConn()
	if conn == nil {
		return ErrNotConnected
	}

	if err := conn.SetWriteDeadline(time.Now().Add(c.cfg.writeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write command frame: %w", err)
	}

	return nil
}

// readFrame reads one terminator-delimited reply frame under the read deadline.
//
// It reads until the frame terminator is observed, so a frame split across
// multiple TCP segments is reassembled; the read is bounded by the configured
// maximum frame size. The returned slice includes the terminator and is a
// copy, safe to retain across subsequent reads.
//
// A read deadline expiry is reported as ErrReadTimeout.
func (c *Client) readFrame() ([]byte, error) {
	conn, reader := c.getTCPConn()
	if conn == nil {
		return nil, ErrNotConnected
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.cfg.readTimeout)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	frame, err := reader.ReadSlice(frameTerminator)
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrFrameTooLarge, c.cfg.maxFrameSize)
		}

		if isTimeoutError(err) {
			return nil, ErrReadTimeout
		}

		return nil, fmt.Errorf("read reply frame: %w", err)
	}

	out := make([]byte, len(frame))
	copy(out, frame)

	return out, nil
}
