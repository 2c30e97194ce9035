package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillgate/skillgate/pkg/api"
)

// writeError maps an APIError onto an HTTP status and serializes the
// canonical error envelope. Non-APIError values are treated as internal
// errors.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		apiErr = api.NewServerError(err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(apiErr))
	json.NewEncoder(w).Encode(api.ErrorResponse{Error: apiErr})
}

func statusFor(e *api.APIError) int {
	switch e.Type {
	case api.ErrorTypeInvalidRequest, api.ErrorTypeConfiguration:
		return http.StatusBadRequest
	case api.ErrorTypeNotFound:
		return http.StatusNotFound
	case api.ErrorTypeNotSupported:
		return http.StatusNotImplemented
	case api.ErrorTypeTooManyRequests:
		return http.StatusTooManyRequests
	case api.ErrorTypeProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
