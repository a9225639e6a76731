package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://quotes.voltgrid.io", cfg.Quote.BaseURL)
	assert.Equal(t, 5, cfg.Quote.TimeoutSecs)
	assert.Equal(t, 5.0, cfg.Quote.RatePerSec)
	assert.Empty(t, cfg.Quote.APIKey, "live quote path disabled by default")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  port: 9090
quote:
  api_key: test-key
log:
  level: debug
  format: console
`), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Quote.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "https://quotes.voltgrid.io", cfg.Quote.BaseURL, "unset keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BESS_SERVER_PORT", "7070")
	t.Setenv("BESS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{{"), 0o644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel zerolog.Level
	}{
		{"debug json", LogConfig{Level: "debug", Format: "json"}, zerolog.DebugLevel},
		{"warn console", LogConfig{Level: "warn", Format: "console"}, zerolog.WarnLevel},
		{"unknown level falls back to info", LogConfig{Level: "verbose"}, zerolog.InfoLevel},
		{"empty level falls back to info", LogConfig{}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
		})
	}
}

func TestQuoteConfigTimeout(t *testing.T) {
	q := QuoteConfig{TimeoutSecs: 5}
	assert.Equal(t, "5s", q.Timeout().String())
}
