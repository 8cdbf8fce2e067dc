package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultHTTPClientTimeout bounds every request made by [HTTPClient].
const defaultHTTPClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:9000")
//	resp, err := client.R().Get("/client/products")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests are resolved against
// baseURL, accept JSON and time out after ten seconds. An empty baseURL
// leaves request URLs untouched.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetTimeout(defaultHTTPClientTimeout).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{Client: client}
}
