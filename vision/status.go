package vision

import "strconv"

// Status is the closed set of outcomes a controller exchange can produce.
//
// The numeric values of the mapped statuses match the error codes the
// controller sends on the wire; StatusTimeout is synthesized by the client
// and never appears in a reply frame.
type Status int

const (
	// StatusUnknown indicates an error code outside the documented set, or a
	// client-side failure that is neither a timeout nor a controller reply.
	// The raw code is available from the ControllerError carrying it.
	StatusUnknown Status = -1

	// StatusOK indicates a successful exchange.
	StatusOK Status = 0

	// StatusCommandError indicates the controller rejected the command tag.
	StatusCommandError Status = 2

	// StatusCommandDisabled indicates the command is not available in the
	// controller's current mode.
	StatusCommandDisabled Status = 3

	// StatusParameterError indicates the controller rejected a command argument.
	StatusParameterError Status = 22

	// StatusTimeout indicates no reply frame arrived within the configured
	// read timeout. It is synthesized by the client, not sent on the wire.
	StatusTimeout Status = 99
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCommandError:
		return "command error"
	case StatusCommandDisabled:
		return "command disabled"
	case StatusParameterError:
		return "parameter error"
	case StatusTimeout:
		return "timeout"
	case StatusUnknown:
		return "unknown"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// statusFromCode maps a controller error code to a Status.
// Codes outside the documented set map to StatusUnknown; the raw code stays
// available on the ControllerError.
func statusFromCode(code int) Status {
	switch Status(code) {
	case StatusOK, StatusCommandError, StatusCommandDisabled, StatusParameterError:
		return Status(code)
	default:
		return StatusUnknown
	}
}
