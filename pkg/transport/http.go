package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skillgate/skillgate/pkg/api"
)

const (
	defaultTimeout = 120 * time.Second

	// maxResponseBody caps how much of a provider response is read.
	maxResponseBody = 10 << 20 // 10 MB
)

// HTTPHandler is the default Handler backed by net/http.
type HTTPHandler struct {
	client *http.Client
}

// NewHTTPHandler creates an HTTPHandler with the given default timeout.
// A zero timeout falls back to 120s.
func NewHTTPHandler(timeout time.Duration) *HTTPHandler {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &HTTPHandler{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do executes the request and returns the raw response. Non-2xx statuses
// and network failures are returned as *api.APIError; the response body
// is read up to maxResponseBody.
func (h *HTTPHandler) Do(ctx context.Context, req *Request) (*Response, error) {
	// Per-call timeout overrides the client default.
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	reqURL, err := mergeQuery(req.URL, req.Query)
	if err != nil {
		return nil, api.NewInvalidRequestError("url", fmt.Sprintf("invalid request URL %q: %s", req.URL, err))
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, body)
	if err != nil {
		return nil, api.NewServerError(fmt.Sprintf("failed to create HTTP request: %s", err))
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, MapNetworkError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return nil, api.NewServerError(fmt.Sprintf("failed to read provider response: %s", err))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, MapStatusError(httpResp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

// mergeQuery folds extra query values into a URL that may already carry
// a query string (e.g. Anthropic's ?beta=true).
func mergeQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
