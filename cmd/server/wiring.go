package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	myHTTP "github.com/MKhiriev/go-admin-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/server"
	"github.com/MKhiriev/go-admin-dashboard/internal/service"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
)

const defaultPingTimeout = 30 * time.Second

// wiring builds the pieces the sequencer runs: the Mongo connection and the
// router over it.
type wiring struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func newWiring(cfg *config.StructuredConfig, logger *logger.Logger) *wiring {
	return &wiring{cfg: cfg, logger: logger}
}

func (w *wiring) connect(ctx context.Context) (server.Database, error) {
	db, err := store.NewConnectMongo(ctx, w.cfg.Storage.Mongo, w.logger)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (w *wiring) routes(conn server.Database) (http.Handler, error) {
	db, ok := conn.(*store.DB)
	if !ok {
		return nil, fmt.Errorf("unsupported database connection %T", conn)
	}

	storages := store.NewStorages(db, w.logger)
	services, err := service.NewServices(storages, w.cfg.App, w.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return myHTTP.NewHandler(services, db, w.cfg.Server, w.logger).Init(), nil
}

// pingTimeout bounds the ping-db command.
func pingTimeout(cfg config.Mongo) time.Duration {
	if cfg.ConnectTimeout > 0 {
		return 2 * cfg.ConnectTimeout
	}
	return defaultPingTimeout
}
