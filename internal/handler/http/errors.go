package http

import "errors"

// Request parsing errors. They are answered with 400 Bad Request.
var (
	// ErrInvalidQueryParam is returned when a numeric query parameter
	// cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidSortParam is returned when the sort parameter is not a JSON
	// object or names a field transactions cannot be sorted by.
	ErrInvalidSortParam = errors.New("invalid sort parameter")
)
