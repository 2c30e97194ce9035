package api

import "fmt"

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeConfiguration   ErrorType = "configuration_error"
	ErrorTypeNotSupported    ErrorType = "not_supported"
	ErrorTypeInvalidRequest  ErrorType = "invalid_request"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeProvider        ErrorType = "provider_error"
	ErrorTypeServerError     ErrorType = "server_error"
	ErrorTypeTooManyRequests ErrorType = "too_many_requests"
)

// APIError is the structured error every public operation surfaces.
// Provider and Operation are filled by the per-call normalization
// boundary for diagnostics; StatusCode and RawBody carry the upstream
// HTTP details for provider errors and are not serialized.
type APIError struct {
	Type      ErrorType `json:"type"`
	Code      string    `json:"code,omitempty"`
	Param     string    `json:"param,omitempty"`
	Message   string    `json:"message"`
	Provider  string    `json:"provider,omitempty"`
	Operation string    `json:"operation,omitempty"`

	StatusCode int    `json:"-"`
	RawBody    string `json:"-"`

	wrapped error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	prefix := ""
	if e.Provider != "" && e.Operation != "" {
		prefix = fmt.Sprintf("%s %s: ", e.Provider, e.Operation)
	}
	if e.Param != "" {
		return fmt.Sprintf("%s%s: %s (param: %s)", prefix, e.Type, e.Message, e.Param)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Type, e.Message)
}

// Unwrap exposes the underlying error when this APIError wraps one.
func (e *APIError) Unwrap() error {
	return e.wrapped
}

// ErrorResponse wraps an APIError for JSON serialization as the top-level
// error response body.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// NewConfigurationError creates an APIError for missing or invalid
// configuration (API key, api_base, unregistered provider). These are
// surfaced before any network call is attempted.
func NewConfigurationError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeConfiguration,
		Message: message,
	}
}

// NewNotSupportedError creates an APIError for an operation the resolved
// provider adapter does not implement. Hitting one of these is a
// first-class, expected outcome for extended operations.
func NewNotSupportedError(operation, providerName string) *APIError {
	return &APIError{
		Type:      ErrorTypeNotSupported,
		Message:   fmt.Sprintf("%s is not supported for provider %q", operation, providerName),
		Provider:  providerName,
		Operation: operation,
	}
}

// NewInvalidRequestError creates an APIError for invalid request parameters.
func NewInvalidRequestError(param, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeInvalidRequest,
		Param:   param,
		Message: message,
	}
}

// NewNotFoundError creates an APIError for resources that cannot be found.
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewProviderError creates an APIError for an upstream provider failure,
// carrying the HTTP status code and the raw response body for diagnostics.
func NewProviderError(statusCode int, message, rawBody string) *APIError {
	return &APIError{
		Type:       ErrorTypeProvider,
		Message:    message,
		StatusCode: statusCode,
		RawBody:    rawBody,
	}
}

// NewServerError creates an APIError for internal errors.
func NewServerError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeServerError,
		Message: message,
	}
}

// NewTooManyRequestsError creates an APIError for rate limiting.
func NewTooManyRequestsError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeTooManyRequests,
		Message: message,
	}
}

// Normalize is the single error boundary applied once per public
// operation. An APIError passes through with Provider/Operation filled in
// when missing; any other error is wrapped into a server_error APIError
// that still unwraps to the original.
func Normalize(providerName, operation string, err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Provider == "" {
			apiErr.Provider = providerName
		}
		if apiErr.Operation == "" {
			apiErr.Operation = operation
		}
		return apiErr
	}
	return &APIError{
		Type:      ErrorTypeServerError,
		Message:   err.Error(),
		Provider:  providerName,
		Operation: operation,
		wrapped:   err,
	}
}
