// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownEnvVars = []string{
	"CONFIG",
	"LOG_LEVEL", "DASHBOARD_DATE", "EXIT_ON_STARTUP_FAILURE",
	"MONGO_URL", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT",
	"PORT", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES",
	"RATE_LIMIT", "RATE_BURST", "CORS_ALLOWED_ORIGINS", "HSTS_MAX_AGE",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"LOG_LEVEL":               "debug",
		"DASHBOARD_DATE":          "2022-01-31",
		"EXIT_ON_STARTUP_FAILURE": "true",

		"MONGO_URL":             "mongodb://localhost:27017/dashboard",
		"MONGO_DATABASE":        "other",
		"MONGO_CONNECT_TIMEOUT": "5s",

		"PORT":                 "8080",
		"REQUEST_TIMEOUT":      "30s",
		"SHUTDOWN_TIMEOUT":     "3s",
		"MAX_BODY_BYTES":       "2048",
		"RATE_LIMIT":           "12.5",
		"RATE_BURST":           "20",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"HSTS_MAX_AGE":         "24h",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "2022-01-31", cfg.App.DashboardDate)
	assert.True(t, cfg.App.ExitOnStartupFailure)

	assert.Equal(t, "mongodb://localhost:27017/dashboard", cfg.Storage.Mongo.URL)
	assert.Equal(t, "other", cfg.Storage.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Storage.Mongo.ConnectTimeout)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8080, cfg.Server.ListenPort())
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.InDelta(t, 12.5, cfg.Server.RateLimit, 0.0001)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Server.HSTSMaxAge)
}

func TestParseEnv_NonNumericPortIsKeptRaw(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "notanumber"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "notanumber", cfg.Server.Port)
	assert.Equal(t, DefaultPort, cfg.Server.ListenPort())
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// TestParseEnv_RepeatedReadsAreIdentical checks that reading the same
// environment twice resolves the same port and database URL.
func TestParseEnv_RepeatedReadsAreIdentical(t *testing.T) {
	for _, port := range []string{"", "8080", "notanumber"} {
		t.Run("PORT="+port, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"PORT":      port,
				"MONGO_URL": "mongodb://db:27017/dashboard",
			})

			first := &StructuredConfig{}
			second := &StructuredConfig{}
			require.NoError(t, parseEnv(first))
			require.NoError(t, parseEnv(second))

			assert.Equal(t, first.Server.ListenPort(), second.Server.ListenPort())
			assert.Equal(t, first.Storage.Mongo.URL, second.Storage.Mongo.URL)
			assert.Equal(t, first, second)
		})
	}
}

// setEnvVars clears every variable the config reads and sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range knownEnvVars {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
