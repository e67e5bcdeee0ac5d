package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("GPS_STALE_AFTER_HOURS")
	os.Unsetenv("MAPBOX_URL")

	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	defer os.Unsetenv("REDIS_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 5, cfg.GPSStaleAfterHours)
	assert.Equal(t, "https://api.mapbox.com", cfg.Mapbox.URL)
	assert.Empty(t, cfg.Mapbox.AccessToken)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("GPS_STALE_AFTER_HOURS", "8")
	os.Setenv("REDIS_URL", "redis://cache.internal:6379/2")
	os.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test_token")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("GPS_STALE_AFTER_HOURS")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("MAPBOX_ACCESS_TOKEN")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 8, cfg.GPSStaleAfterHours)
	assert.Equal(t, "redis://cache.internal:6379/2", cfg.Redis.URL)
	assert.Equal(t, "pk.test_token", cfg.Mapbox.AccessToken)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
REDIS_URL=redis://staging:6379/1
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "redis://staging:6379/1", cfg.Redis.URL)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("REDIS_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}
