package vision

import (
	"fmt"

	"github.com/arloliu/go-vision/internal/ascii"
)

// decodeFunc decodes the success payload of a reply frame.
// It receives the tokens following the echoed command tag.
type decodeFunc func(tokens []string) error

// exchange performs one complete command exchange: encode, send, receive one
// reply frame, tokenize, and classify. It is the single template behind every
// operation; only the tag, the arguments, and the success decoder vary.
//
// The exchange mutex is held for the whole call, keeping the half-duplex
// invariant of one outstanding request per connection.
func (c *Client) exchange(tag string, decode decodeFunc, args ...string) error {
	c.exchangeMutex.Lock()
	defer c.exchangeMutex.Unlock()

	return c.exchangeLocked(tag, decode, args...)
}

// exchangeLocked is exchange without the lock. The trigger operation uses it
// directly so its acknowledgement and data frame reads stay under one lock.
func (c *Client) exchangeLocked(tag string, decode decodeFunc, args ...string) error {
	frame := encodeCommand(tag, args...)

	if err := c.writeFrame(frame); err != nil {
		c.logger.Error("vision: failed to send command", "tag", tag, "error", err)

		return err
	}

	c.metrics.incCommandSendCount(tag)

	reply, err := c.readFrame()
	if err != nil {
		c.observeRecvError(tag, err)

		return err
	}

	tokens := tokenize(reply)

	return c.classify(tag, tokens, decode)
}

// classify discriminates a tokenized reply frame: an echo of the command tag
// is a success reply, the error marker is a controller error, anything else
// is a protocol violation.
func (c *Client) classify(tag string, tokens []string, decode decodeFunc) error {
	if len(tokens) == 0 {
		c.metrics.incReplyErrCount()

		return fmt.Errorf("%w: empty reply to %s", ErrMalformedReply, tag)
	}

	switch tokens[0] {
	case tag:
		if decode != nil {
			if err := decode(tokens[1:]); err != nil {
				c.metrics.incReplyErrCount()

				return err
			}
		}

		c.metrics.incReplyRecvCount()

		return nil

	case errorMarker:
		return c.decodeErrorReply(tag, tokens)

	default:
		c.metrics.incReplyErrCount()
		c.logger.Error("vision: protocol violation", "tag", tag, "replyTag", tokens[0])

		return fmt.Errorf("%w: sent %s, reply starts with %q", ErrUnexpectedTag, tag, tokens[0])
	}
}

// decodeErrorReply decodes an ER,<TAG>,<code> frame into a ControllerError.
func (c *Client) decodeErrorReply(tag string, tokens []string) error {
	c.metrics.incErrorReplyCount()

	if len(tokens) < 3 {
		return fmt.Errorf("%w: error reply to %s has %d tokens, want 3", ErrMalformedReply, tag, len(tokens))
	}

	code, err := ascii.ParseInt(tokens[2])
	if err != nil {
		return fmt.Errorf("%w: error reply to %s: %v", ErrMalformedReply, tag, err)
	}

	ctrlErr := &ControllerError{Tag: tokens[1], Code: code}

	c.logger.Debug("vision: controller error reply",
		"tag", tag,
		"replyTag", ctrlErr.Tag,
		"code", ctrlErr.Code,
		"status", ctrlErr.Status().String())

	return ctrlErr
}

// observeRecvError updates metrics and logs for a failed frame read.
func (c *Client) observeRecvError(tag string, err error) {
	if StatusOf(err) == StatusTimeout {
		c.metrics.incTimeoutCount()
		c.logger.Warn("vision: reply timeout", "tag", tag, "timeout", c.cfg.readTimeout)

		return
	}

	c.metrics.incReplyErrCount()
	c.logger.Error("vision: failed to receive reply", "tag", tag, "error", err)
}
