package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

var loggerKey = contextKey{}

// WithLogger returns a context carrying the given logger. Panics on a nil
// logger; storing nil would silently break FromContext downstream.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in the context, or slog.Default()
// when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault returns the context's logger when present, otherwise
// the provided fallback (or slog.Default() when the fallback is nil).
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
