// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DashboardDateLayout is the layout of [App.DashboardDate].
const DashboardDateLayout = "2006-01-02"

// validate fills unset fields of the final merged [StructuredConfig] with
// their defaults and checks the values that cannot be defaulted.
//
// An empty Mongo URL is deliberately accepted here: it is reported by the
// connect step of the startup sequence like any other connection failure.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	cfg.applyDefaults()

	if _, err := time.Parse(DashboardDateLayout, cfg.App.DashboardDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDashboardDate, cfg.App.DashboardDate)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidRateLimit
	}

	if cfg.Storage.Mongo.ConnectTimeout < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.DashboardDate == "" {
		cfg.App.DashboardDate = DefaultDashboardDate
	}

	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Server.HSTSMaxAge <= 0 {
		cfg.Server.HSTSMaxAge = DefaultHSTSMaxAge
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = DefaultCORSAllowedOrigins
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = int(cfg.Server.RateLimit) + 1
	}
}
