package auth

import (
	"log/slog"
	"net/http"
)

// Middleware creates HTTP middleware from a Chain. Paths on the bypass
// list (health, metrics) skip authentication entirely.
func Middleware(chain *Chain, bypassEndpoints []string) func(http.Handler) http.Handler {
	bypass := make(map[string]bool, len(bypassEndpoints))
	for _, ep := range bypassEndpoints {
		bypass[ep] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bypass[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			result := chain.Authenticate(r.Context(), r)

			if result.Decision == No {
				slog.Warn("authentication failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"error", result.Err,
				)
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if result.Decision != Yes || result.Identity == nil {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if result.Identity.Subject == "" {
				slog.Error("authenticator returned identity with empty subject")
				writeAuthError(w, http.StatusInternalServerError, "internal authentication error")
				return
			}

			slog.Debug("authentication succeeded",
				"subject", result.Identity.Subject,
				"path", r.URL.Path,
			)

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), result.Identity)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errType := "invalid_request"
	if status == http.StatusInternalServerError {
		errType = "server_error"
	}
	w.Write([]byte(`{"error":{"type":"` + errType + `","message":"` + message + `"}}`))
}
