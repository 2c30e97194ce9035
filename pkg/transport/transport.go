// Package transport executes the HTTP requests produced by provider
// adapters. The Handler interface is the seam between the normalization
// layer and the network: the client passes fully transformed URL, headers,
// query, and body through it and gets raw response bytes back for the
// adapter to parse. Callers can inject their own Handler; HTTPHandler is
// the default net/http implementation.
package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Request describes one fully transformed provider HTTP request.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string

	// Query is merged into any query string already present in URL.
	Query url.Values

	// Body is the serialized request payload, or nil for bodyless requests.
	Body []byte

	// Timeout bounds this single request. Zero means the handler's
	// default applies.
	Timeout time.Duration
}

// Response carries the raw provider response for adapter parsing.
// Handlers only return it for 2xx statuses; everything else is mapped
// to an APIError.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Handler executes a Request. Implementations must be safe for
// concurrent use by multiple goroutines.
type Handler interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}
