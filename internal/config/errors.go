package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration value cannot be defaulted.
var (
	// ErrInvalidDashboardDate indicates a DASHBOARD_DATE that is not in
	// YYYY-MM-DD form.
	ErrInvalidDashboardDate = errors.New("invalid dashboard date")
	// ErrInvalidRateLimit indicates a negative rate limit or burst.
	ErrInvalidRateLimit = errors.New("invalid rate limit configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a negative connect timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
