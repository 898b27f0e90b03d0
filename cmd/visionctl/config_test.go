package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "visionctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadRunConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		require := require.New(t)

		path := writeConfigFile(t, `
address = "10.0.0.5"
port = 9004
connect_timeout = "1s"
read_timeout = "250ms"
sdcard = 2
program = 7
exec_condition = 1
trigger_count = 3
`)

		cfg, err := loadRunConfig(path)
		require.NoError(err)
		require.Equal("10.0.0.5", cfg.Address)
		require.Equal(9004, cfg.Port)
		require.Equal(time.Second, cfg.ConnectTimeout)
		require.Equal(250*time.Millisecond, cfg.ReadTimeout)
		require.Equal(2, cfg.SDCard)
		require.Equal(7, cfg.Program)
		require.Equal(1, cfg.ExecCondition)
		require.Equal(3, cfg.TriggerCount)
	})

	t.Run("defaults for omitted keys", func(t *testing.T) {
		require := require.New(t)

		path := writeConfigFile(t, `address = "10.0.0.5"`)

		cfg, err := loadRunConfig(path)
		require.NoError(err)
		require.Equal("10.0.0.5", cfg.Address)
		require.Equal(8500, cfg.Port)
		require.Equal(3*time.Second, cfg.ConnectTimeout)
		require.Equal(5*time.Second, cfg.ReadTimeout)
		require.Equal(-1, cfg.Program)
		require.Equal(-1, cfg.ExecCondition)
		require.Equal(1, cfg.TriggerCount)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeConfigFile(t, `read_timeout = "soon"`)

		_, err := loadRunConfig(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "read_timeout")
	})

	t.Run("negative trigger count", func(t *testing.T) {
		path := writeConfigFile(t, `trigger_count = -2`)

		_, err := loadRunConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRunConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
	})
}
