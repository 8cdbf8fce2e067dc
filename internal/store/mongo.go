package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DB holds the MongoDB client and the database the repositories work on.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo opens a client for cfg.URL and pings the primary.
// A single attempt is made; the caller decides what a failure means and
// reports it, so failures are only logged at debug level here.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*DB, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyDatabaseURL
	}

	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	// establish connection
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Debug().Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Debug().Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	name := databaseName(cfg)
	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to database successfully")

	return &DB{
		client:   client,
		database: client.Database(name),
		logger:   log,
	}, nil
}

// databaseName picks the explicit database name, then the one in the
// connection string path, then the default.
func databaseName(cfg config.Mongo) string {
	if cfg.Database != "" {
		return cfg.Database
	}
	if cs, err := connstring.ParseAndValidate(cfg.URL); err == nil && cs.Database != "" {
		return cs.Database
	}
	return config.DefaultDatabaseName
}

// Ping checks that the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting database: %w", err)
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database disconnected")
	return nil
}

// Collection returns a handle to the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}
