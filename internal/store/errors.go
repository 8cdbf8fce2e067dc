package store

import "errors"

// Connection errors returned by [NewConnectMongo].
var (
	// ErrEmptyDatabaseURL is returned when no connection string was
	// configured.
	ErrEmptyDatabaseURL = errors.New("database url is empty")

	// ErrConnectingDatabase wraps driver errors raised while connecting or
	// pinging the server.
	ErrConnectingDatabase = errors.New("error connecting database")
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
	// string.
	ErrInvalidID = errors.New("invalid object id")

	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrOverallStatNotFound is returned when the overall statistics
	// collection has no matching document.
	ErrOverallStatNotFound = errors.New("overall stat was not found")
)

// Low-level database operation errors.
var (
	// ErrExecutingQuery is returned when a find, count or aggregate command
	// fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrDecodingDocuments is returned when the returned documents cannot be
	// decoded into the destination models.
	ErrDecodingDocuments = errors.New("failed to decode documents")
)
