package config

import "time"

const (
	// DefaultPort is used when PORT is unset or not a valid port number.
	DefaultPort = 9000

	maxPort = 65535

	// DefaultDatabaseName is used when neither MONGO_DATABASE nor the path of
	// MONGO_URL name a database.
	DefaultDatabaseName = "admin_dashboard"

	// DefaultDashboardDate is the reference day of the bundled dataset.
	DefaultDashboardDate = "2021-11-15"

	// DefaultLogLevel is the level used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"

	// DefaultMaxBodyBytes matches the 100kb limit of common JSON body parsers.
	DefaultMaxBodyBytes int64 = 100 << 10

	DefaultRequestTimeout  = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultHSTSMaxAge      = 180 * 24 * time.Hour
)

// DefaultCORSAllowedOrigins allows any origin.
var DefaultCORSAllowedOrigins = []string{"*"}
