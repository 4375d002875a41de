package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, 24*time.Hour, conf.GameTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, Board{Rows: 8, Columns: 8, WinLength: 4}, conf.Board)
	})

	t.Run("Reads board section", func(t *testing.T) {
		path := writeConfig(t, "board:\n  rows: 6\n  columns: 7\n  win-length: 4\nredis:\n  host: cache\n  port: \"6380\"\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, Board{Rows: 6, Columns: 7, WinLength: 4}, conf.Board)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects an impossible board", func(t *testing.T) {
		// Given: a win length larger than the board
		path := writeConfig(t, "board:\n  rows: 3\n  columns: 3\n  win-length: 5\n")

		// When: loading it
		_, err := Load(path)

		// Then: the engine's configuration error is reported
		require.ErrorIs(t, err, connectfour.ErrConfiguration)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)

		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
