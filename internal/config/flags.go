package config

import (
	"github.com/urfave/cli/v2"
)

// Flag names shared by the server commands.
const (
	FlagPort                 = "port"
	FlagMongoURL             = "mongo-url"
	FlagMongoDatabase        = "mongo-database"
	FlagMongoConnectTimeout  = "mongo-connect-timeout"
	FlagConfig               = "config"
	FlagLogLevel             = "log-level"
	FlagDashboardDate        = "dashboard-date"
	FlagExitOnStartupFailure = "exit-on-startup-failure"
	FlagRequestTimeout       = "request-timeout"
	FlagShutdownTimeout      = "shutdown-timeout"
)

// Flags returns the global command-line flags understood by [parseFlags].
//
// None of the flags declare EnvVars: environment variables are read by the
// env source of the config builder, so a flag only wins when it is passed
// explicitly. --exit-on-startup-failure=false turns off a true value coming
// from EXIT_ON_STARTUP_FAILURE; a JSON config file is merged last and can
// only turn it on.
//
// Flags:
//
//	-p/--port                  HTTP listen port
//	-m/--mongo-url             MongoDB connection string
//	--mongo-database           database name override
//	--mongo-connect-timeout    connect/server selection timeout (e.g. "10s")
//	-c/--config                json file path with configs
//	-l/--log-level             debug, info, warn, error
//	--dashboard-date           dashboard reference day (YYYY-MM-DD)
//	--exit-on-startup-failure  return instead of idling when the database is unreachable
//	--request-timeout          request timeout (e.g. "30s", "1m")
//	--shutdown-timeout         graceful shutdown timeout
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagPort, Aliases: []string{"p"}, Usage: "HTTP listen port"},
		&cli.StringFlag{Name: FlagMongoURL, Aliases: []string{"m"}, Usage: "MongoDB connection string"},
		&cli.StringFlag{Name: FlagMongoDatabase, Usage: "MongoDB database name"},
		&cli.DurationFlag{Name: FlagMongoConnectTimeout, Usage: "MongoDB connect timeout (e.g. 10s)"},
		&cli.StringFlag{Name: FlagConfig, Aliases: []string{"c"}, Usage: "JSON config file path"},
		&cli.StringFlag{Name: FlagLogLevel, Aliases: []string{"l"}, Usage: "Log level (debug, info, warn, error)"},
		&cli.StringFlag{Name: FlagDashboardDate, Usage: "Dashboard reference day (YYYY-MM-DD)"},
		&cli.BoolFlag{Name: FlagExitOnStartupFailure, Usage: "Exit when the database connection fails"},
		&cli.DurationFlag{Name: FlagRequestTimeout, Usage: "Request timeout (e.g. 30s, 1m)"},
		&cli.DurationFlag{Name: FlagShutdownTimeout, Usage: "Graceful shutdown timeout"},
	}
}

// parseFlags converts the explicitly set flags of c into a partial
// [StructuredConfig]. Unset flags stay at their zero value so that they do
// not override other sources during the merge.
func parseFlags(c *cli.Context) *StructuredConfig {
	cfg := &StructuredConfig{}

	if c.IsSet(FlagPort) {
		cfg.Server.Port = c.String(FlagPort)
	}
	if c.IsSet(FlagRequestTimeout) {
		cfg.Server.RequestTimeout = c.Duration(FlagRequestTimeout)
	}
	if c.IsSet(FlagShutdownTimeout) {
		cfg.Server.ShutdownTimeout = c.Duration(FlagShutdownTimeout)
	}

	if c.IsSet(FlagMongoURL) {
		cfg.Storage.Mongo.URL = c.String(FlagMongoURL)
	}
	if c.IsSet(FlagMongoDatabase) {
		cfg.Storage.Mongo.Database = c.String(FlagMongoDatabase)
	}
	if c.IsSet(FlagMongoConnectTimeout) {
		cfg.Storage.Mongo.ConnectTimeout = c.Duration(FlagMongoConnectTimeout)
	}

	if c.IsSet(FlagLogLevel) {
		cfg.App.LogLevel = c.String(FlagLogLevel)
	}
	if c.IsSet(FlagDashboardDate) {
		cfg.App.DashboardDate = c.String(FlagDashboardDate)
	}
	if c.IsSet(FlagExitOnStartupFailure) {
		cfg.App.ExitOnStartupFailure = c.Bool(FlagExitOnStartupFailure)
	}

	if c.IsSet(FlagConfig) {
		cfg.JSONFilePath = c.String(FlagConfig)
	}

	return cfg
}
