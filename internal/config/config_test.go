package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5000, cfg.MaxTextLength)
	assert.Equal(t, 10.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MAX_TEXT_LENGTH", "1000")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 1000, cfg.MaxTextLength)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_InvalidMaxTextLength(t *testing.T) {
	t.Setenv("MAX_TEXT_LENGTH", "abc")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MAX_TEXT_LENGTH", "-1")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("MAX_TEXT_LENGTH", "0")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "fast")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("RATE_LIMIT_PER_SECOND", "0")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("RATE_LIMIT_PER_SECOND", "10")
	t.Setenv("RATE_LIMIT_BURST", "-3")
	_, err = Load()
	require.Error(t, err)
}
