package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skillgate/skillgate/pkg/api"
)

// MapStatusError converts a non-2xx provider response into an APIError.
// It attempts to extract a descriptive message from the response body
// and always attaches the status code and raw body for diagnostics.
func MapStatusError(statusCode int, body []byte) *api.APIError {
	message := ExtractErrorMessage(body)

	var e *api.APIError
	switch {
	case statusCode == http.StatusBadRequest:
		if message == "" {
			message = "provider rejected the request"
		}
		e = api.NewInvalidRequestError("", message)

	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		if message == "" {
			message = "provider authentication failed"
		}
		e = api.NewProviderError(statusCode, message, string(body))

	case statusCode == http.StatusNotFound:
		if message == "" {
			message = "provider resource not found"
		}
		e = api.NewNotFoundError(message)

	case statusCode == http.StatusTooManyRequests:
		if message == "" {
			message = "provider rate limit exceeded"
		}
		e = api.NewTooManyRequestsError(message)

	default:
		if message == "" {
			message = fmt.Sprintf("provider request failed (HTTP %d)", statusCode)
		}
		e = api.NewProviderError(statusCode, message, string(body))
	}

	e.StatusCode = statusCode
	e.RawBody = string(body)
	return e
}

// MapNetworkError converts a network-level failure (connection refused,
// timeout, DNS) into an APIError.
func MapNetworkError(err error) *api.APIError {
	return api.NewServerError(fmt.Sprintf("provider connection error: %s", err))
}

// ExtractErrorMessage pulls a human-readable message out of a provider
// error body. Both Anthropic ({"error":{"message":...}}) and OpenAI
// error envelopes are covered, plus a bare {"message":...} fallback.
func ExtractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}

	var flat struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return flat.Message
	}

	return ""
}
