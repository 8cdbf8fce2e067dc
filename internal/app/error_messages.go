// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// admin dashboard handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgSomethingWentWrong is the message of every 500 response. The
	// underlying reason travels in the "error" field next to it.
	MsgSomethingWentWrong = "Something went wrong"

	// MsgRouteNotFound is returned for paths no route group serves.
	MsgRouteNotFound = "Route not found"

	// MsgTooManyRequests is returned when the rate limiter rejects a request.
	MsgTooManyRequests = "Too many requests"

	// MsgInvalidJSONBody is returned when a JSON request body cannot be
	// parsed.
	MsgInvalidJSONBody = "Invalid JSON body"

	// MsgInvalidFormBody is returned when a URL-encoded request body cannot
	// be parsed.
	MsgInvalidFormBody = "Invalid form body"

	// MsgInvalidGzipBody is returned when a gzip-encoded request body cannot
	// be decompressed.
	MsgInvalidGzipBody = "Invalid gzip data"

	// MsgBodyTooLarge is returned when a request body exceeds the
	// configured limit.
	MsgBodyTooLarge = "Request body too large"

	// MsgDatabaseUnavailable is returned by the health check when the
	// database does not answer.
	MsgDatabaseUnavailable = "Database unavailable"

	// MsgServerBanner is the plain-text body of the root route.
	MsgServerBanner = "Admin dashboard API"
)
