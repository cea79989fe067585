package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from yaml", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `
log-level: debug
mode: cli
http-port: "8080"
game-ttl: 1h
redis:
  host: redis
  port: "6380"
`)

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeCLI, conf.Mode)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, time.Hour, conf.GameTTL)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: info\n")

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults fill the gaps
		assert.Equal(t, ModeHTTP, conf.Mode)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 24*time.Hour, conf.GameTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		path := writeConfig(t, "mode: websocket\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mode")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
