// Package middleware holds the HTTP middleware applied by the router: trace
// IDs, JWT authentication and request throttling.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/lpetrosyan/vocab-api/internal/api/shared"
)

// Trace attaches a trace ID to the request context. Applied first so every
// later handler and log line can correlate on it.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
