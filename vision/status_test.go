package vision

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		code     int
		expected Status
	}{
		{0, StatusOK},
		{2, StatusCommandError},
		{3, StatusCommandDisabled},
		{22, StatusParameterError},
		{57, StatusUnknown},
		{99, StatusUnknown}, // 99 is client-synthesized, never a wire code
		{-1, StatusUnknown},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, statusFromCode(test.code), "code %d", test.code)
	}
}

func TestStatusString(t *testing.T) {
	require := require.New(t)

	require.Equal("ok", StatusOK.String())
	require.Equal("command error", StatusCommandError.String())
	require.Equal("command disabled", StatusCommandDisabled.String())
	require.Equal("parameter error", StatusParameterError.String())
	require.Equal("timeout", StatusTimeout.String())
	require.Equal("unknown", StatusUnknown.String())
	require.Equal("status(7)", Status(7).String())
}

func TestControllerError(t *testing.T) {
	require := require.New(t)

	err := &ControllerError{Tag: "PW", Code: 22}
	require.Equal(StatusParameterError, err.Status())
	require.Contains(err.Error(), "PW")
	require.Contains(err.Error(), "22")

	unknown := &ControllerError{Tag: "TA", Code: 57}
	require.Equal(StatusUnknown, unknown.Status())
	require.Equal(57, unknown.Code)
}

func TestStatusOf(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusOK, StatusOf(nil))
	require.Equal(StatusTimeout, StatusOf(ErrReadTimeout))
	require.Equal(StatusTimeout, StatusOf(fmt.Errorf("exchange: %w", ErrReadTimeout)))
	require.Equal(StatusCommandDisabled, StatusOf(&ControllerError{Tag: "PW", Code: 3}))
	require.Equal(StatusUnknown, StatusOf(&ControllerError{Tag: "PW", Code: 42}))
	require.Equal(StatusUnknown, StatusOf(errors.New("dial tcp: connection refused")))
	require.Equal(StatusUnknown, StatusOf(ErrMalformedReply))
}
