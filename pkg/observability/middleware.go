package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// MetricsMiddleware wraps an HTTP handler to record request metrics.
// Resource IDs are normalized out of the route label so they do not
// explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := normalizeRoute(r.URL.Path)
		statusClass := strconv.Itoa(sw.status/100) + "xx"

		RequestsTotal.WithLabelValues(r.Method, route, statusClass).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// normalizeRoute replaces skill and version IDs in a path with
// placeholders: /v1/skills/sk_123/versions/2 -> /v1/skills/{id}/versions/{version}.
func normalizeRoute(path string) string {
	if !strings.HasPrefix(path, "/v1/skills") {
		return path
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	// parts[0] = "v1", parts[1] = "skills".
	if len(parts) > 2 {
		parts[2] = "{id}"
	}
	if len(parts) > 4 && parts[3] == "versions" {
		parts[4] = "{version}"
	}
	return "/" + strings.Join(parts, "/")
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// WriteHeader captures the status code and delegates to the underlying writer.
func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

// Write delegates to the underlying writer and marks the status as written.
func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}
