package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEPLOYBUTTON_SERVER_HOST",
		"DEPLOYBUTTON_SERVER_PORT",
		"DEPLOYBUTTON_LOG_LEVEL",
		"DEPLOYBUTTON_LOG_FORMAT",
		"DEPLOYBUTTON_GENERATOR_ENDPOINT",
		"DEPLOYBUTTON_THEME_VARIANT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, deployurl.DefaultEndpoint, cfg.Generator.Endpoint)
	assert.Equal(t, deployurl.DefaultRepository, cfg.Generator.DefaultRepository)
	assert.Equal(t, deployurl.DefaultButtonImage, cfg.Generator.ButtonImage)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.Equal(t, "light", cfg.Theme.Variant)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	content := `
server:
  host: "0.0.0.0"
  port: 9000
  shutdown_timeout: 3s
log:
  level: debug
  format: json
generator:
  endpoint: https://example.com/new
theme:
  variant: dark
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://example.com/new", cfg.Generator.Endpoint)
	assert.Equal(t, "dark", cfg.Theme.Variant)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEPLOYBUTTON_SERVER_PORT", "3000")
	t.Setenv("DEPLOYBUTTON_LOG_LEVEL", "warn")
	t.Setenv("DEPLOYBUTTON_THEME_VARIANT", "dark")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "dark", cfg.Theme.Variant)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "debug", Format: "json"}, &buf)

	logger.Debug("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLogger_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}
