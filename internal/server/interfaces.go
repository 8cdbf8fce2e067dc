package server

import (
	"context"
	"net"
	"net/http"
)

// Database is the connection produced by the connect step. The sequencer
// closes it after the HTTP server has stopped.
type Database interface {
	// Ping checks that the database answers.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close(ctx context.Context) error
}

// ConnectFunc performs the single connection attempt of the sequence.
type ConnectFunc func(ctx context.Context) (Database, error)

// RoutesFunc builds the HTTP handler over an established connection. It is
// only ever called after a successful connect.
type RoutesFunc func(db Database) (http.Handler, error)

// ListenFunc opens the listening socket, [net.Listen] by default.
type ListenFunc func(network, address string) (net.Listener, error)
