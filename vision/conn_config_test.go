package vision

import (
	"testing"
	"time"

	"github.com/arloliu/go-vision/logger"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionConfig(t *testing.T) {
	require := require.New(t)

	t.Run("Valid Configuration", func(t *testing.T) {
		cfg, err := NewConnectionConfig("192.168.0.10", 8500,
			WithConnectTimeout(5*time.Second),
			WithReadTimeout(10*time.Second),
			WithWriteTimeout(3*time.Second),
			WithMaxFrameSize(4096),
		)
		require.NoError(err)
		require.Equal("192.168.0.10", cfg.host)
		require.Equal(8500, cfg.port)
		require.Equal(5*time.Second, cfg.connectTimeout)
		require.Equal(10*time.Second, cfg.readTimeout)
		require.Equal(3*time.Second, cfg.writeTimeout)
		require.Equal(4096, cfg.maxFrameSize)
		require.Equal("192.168.0.10:8500", cfg.RemoteAddr())
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewConnectionConfig("127.0.0.1", 8500)
		require.NoError(err)
		require.Equal(3*time.Second, cfg.connectTimeout)
		require.Equal(5*time.Second, cfg.readTimeout)
		require.Equal(2*time.Second, cfg.writeTimeout)
		require.Equal(1024, cfg.maxFrameSize)
		require.NotNil(cfg.logger)
	})

	t.Run("Invalid IP Address", func(t *testing.T) {
		_, err := NewConnectionConfig("invalid-ip", 8500)
		require.Error(err)
		require.EqualError(err, "invalid host")
	})

	t.Run("Invalid Port - Below Range", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", -1)
		require.Error(err)
		require.EqualError(err, "port is out of range [1, 65535]")
	})

	t.Run("Invalid Port - Above Range", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", 65536)
		require.Error(err)
		require.EqualError(err, "port is out of range [1, 65535]")
	})

	t.Run("Invalid Connect Timeout", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", 8500, WithConnectTimeout(0))
		require.Error(err)
		require.EqualError(err, "connect timeout out of range [0.1, 30]")

		_, err = NewConnectionConfig("192.168.0.10", 8500, WithConnectTimeout(31*time.Second))
		require.Error(err)
		require.EqualError(err, "connect timeout out of range [0.1, 30]")

		err = WithConnectTimeout(5 * time.Second).apply(nil)
		require.Error(err)
		require.ErrorIs(ErrConnConfigNil, err)
	})

	t.Run("Invalid Read Timeout", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", 8500, WithReadTimeout(0))
		require.Error(err)
		require.EqualError(err, "read timeout out of range [0.01, 120]")

		_, err = NewConnectionConfig("192.168.0.10", 8500, WithReadTimeout(121*time.Second))
		require.Error(err)
		require.EqualError(err, "read timeout out of range [0.01, 120]")

		err = WithReadTimeout(5 * time.Second).apply(nil)
		require.Error(err)
		require.ErrorIs(ErrConnConfigNil, err)
	})

	t.Run("Invalid Write Timeout", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", 8500, WithWriteTimeout(0))
		require.Error(err)
		require.EqualError(err, "write timeout out of range [0.01, 30]")

		_, err = NewConnectionConfig("192.168.0.10", 8500, WithWriteTimeout(31*time.Second))
		require.Error(err)
		require.EqualError(err, "write timeout out of range [0.01, 30]")

		err = WithWriteTimeout(5 * time.Second).apply(nil)
		require.Error(err)
		require.ErrorIs(ErrConnConfigNil, err)
	})

	t.Run("Invalid Max Frame Size", func(t *testing.T) {
		_, err := NewConnectionConfig("192.168.0.10", 8500, WithMaxFrameSize(32))
		require.Error(err)
		require.EqualError(err, "max frame size out of range [64, 65536]")

		_, err = NewConnectionConfig("192.168.0.10", 8500, WithMaxFrameSize(1<<20))
		require.Error(err)
		require.EqualError(err, "max frame size out of range [64, 65536]")
	})

	t.Run("With Logger", func(t *testing.T) {
		l := logger.NewSlog(logger.DebugLevel, false)
		cfg, err := NewConnectionConfig("192.168.0.10", 8500, WithLogger(l))
		require.NoError(err)
		require.Equal(l, cfg.logger)

		err = WithLogger(l).apply(nil)
		require.Error(err)
		require.ErrorIs(ErrConnConfigNil, err)
	})
}
