// Package http implements the HTTP transport layer of the admin dashboard.
//
// It mounts the client, general, management and sales route groups and wraps
// them with the standard middleware chain: request ids, trace-id scoped
// logging in common log format, panic recovery, security headers, CORS, rate
// limiting, body parsing and response compression. Handlers translate
// requests into service calls and service errors into JSON error bodies.
package http
