package vision

import (
	"errors"
	"fmt"
)

var (
	// ErrConnConfigNil indicates that a nil ConnectionConfig was provided.
	ErrConnConfigNil = errors.New("vision: connection config is nil")

	// ErrNotConnected indicates that an operation was invoked before Open,
	// or after the connection was closed.
	ErrNotConnected = errors.New("vision: client is not connected")

	// ErrAlreadyConnected indicates that Open was called on an open client.
	ErrAlreadyConnected = errors.New("vision: client is already connected")
)

var (
	// ErrReadTimeout indicates that no reply frame arrived within the
	// configured read timeout.
	ErrReadTimeout = errors.New("vision: read timeout waiting for reply frame")

	// ErrFrameTooLarge indicates that a reply frame exceeded the configured
	// maximum frame size without a terminator.
	ErrFrameTooLarge = errors.New("vision: reply frame exceeds maximum frame size")

	// ErrMalformedReply indicates a reply frame whose token count or field
	// shape does not match the operation's expected payload.
	ErrMalformedReply = errors.New("vision: malformed reply frame")

	// ErrUnexpectedTag indicates a reply frame whose first token is neither
	// the echoed command tag nor the error marker. This is a protocol
	// violation; the connection should be considered unusable.
	ErrUnexpectedTag = errors.New("vision: reply tag does not match request")
)

// ControllerError is a protocol-level error reply from the controller.
//
// It carries the tag the controller reported in the error frame and the raw
// numeric error code. Use errors.As to retrieve it from an operation error,
// or StatusOf to collapse it to a Status.
type ControllerError struct {
	// Tag is the command tag echoed in the error frame.
	Tag string
	// Code is the numeric error code from the error frame.
	Code int
}

func (e *ControllerError) Error() string {
	return fmt.Sprintf("vision: controller rejected %s: %s (code %d)", e.Tag, e.Status(), e.Code)
}

// Status maps the controller's error code to the Status enumeration.
// Codes outside the documented set map to StatusUnknown; Code retains the
// raw value.
func (e *ControllerError) Status() Status {
	return statusFromCode(e.Code)
}

// StatusOf collapses an operation error to the Status enumeration.
//
// A nil error is StatusOK. Read timeouts map to StatusTimeout, controller
// error replies map per their code, and every other failure (transport
// faults, malformed frames) is StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}

	if errors.Is(err, ErrReadTimeout) {
		return StatusTimeout
	}

	ctrlErr := &ControllerError{}
	if errors.As(err, &ctrlErr) {
		return ctrlErr.Status()
	}

	return StatusUnknown
}
