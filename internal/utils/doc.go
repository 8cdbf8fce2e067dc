// Package utils provides general-purpose helpers shared by the server and
// its tests: JSON response writing, a resty-based HTTP client and trace id
// generation.
package utils
