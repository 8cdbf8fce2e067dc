package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/server"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/urfave/cli/v2"
)

const (
	serverRole = "admin-dashboard-server"
	pingRole   = "ping-db"
)

func newCLI() *cli.App {
	return &cli.App{
		Name:    serverRole,
		Usage:   "admin dashboard API over MongoDB",
		Version: buildVersion,
		Flags:   config.Flags(),
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "connect to the database, then serve the API",
				Action: serve,
			},
			{
				Name:   "ping-db",
				Usage:  "connect to the database once and ping it",
				Action: pingDB,
			},
		},
	}
}

// loadConfig reads the configuration and builds the logger for role.
func loadConfig(c *cli.Context, role string) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(c)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	cfg.App.Version = buildVersion

	log := logger.NewLogger(role, logger.ParseLevel(cfg.App.LogLevel))
	log.Debug().
		Int("port", cfg.Server.ListenPort()).
		Str("dashboard_date", cfg.App.DashboardDate).
		Bool("exit_on_startup_failure", cfg.App.ExitOnStartupFailure).
		Msg("received configs")

	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := loadConfig(c, serverRole)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	w := newWiring(cfg, log)
	return server.NewSequencer(w.connect, w.routes, cfg, log).Run(ctx)
}

func pingDB(c *cli.Context) error {
	cfg, log, err := loadConfig(c, pingRole)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, pingTimeout(cfg.Storage.Mongo))
	defer cancel()

	db, err := store.NewConnectMongo(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Error().Msgf("%v did not connect", err)
		return cli.Exit("database is not reachable", 1)
	}
	defer db.Close(context.WithoutCancel(ctx))

	log.Info().Msg("database answered ping")
	return nil
}
