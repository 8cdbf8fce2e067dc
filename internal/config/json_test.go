package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations accept both strings ("30s") and nanosecond numbers.
	jsonBody := `{
		"app": {
			"log_level": "debug",
			"dashboard_date": "2021-10-01",
			"exit_on_startup_failure": true
		},
		"server": {
			"port": "8080",
			"request_timeout": "30s",
			"shutdown_timeout": 1000000000,
			"max_body_bytes": 4096,
			"rate_limit": 5,
			"rate_burst": 10,
			"cors_allowed_origins": ["https://dashboard.example"],
			"hsts_max_age": "1h"
		},
		"storage": {
			"mongo": {
				"url": "mongodb://localhost:27017/dashboard",
				"database": "dashboard",
				"connect_timeout": "5s"
			}
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "2021-10-01", cfg.App.DashboardDate)
	assert.True(t, cfg.App.ExitOnStartupFailure)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)
	assert.InDelta(t, 5.0, cfg.Server.RateLimit, 0.0001)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Server.HSTSMaxAge)

	assert.Equal(t, "mongodb://localhost:27017/dashboard", cfg.Storage.Mongo.URL)
	assert.Equal(t, "dashboard", cfg.Storage.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Storage.Mongo.ConnectTimeout)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": `), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "forever"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
