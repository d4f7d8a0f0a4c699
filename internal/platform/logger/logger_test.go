package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpetrosyan/vocab-api/internal/config"
)

func TestSetupAcceptsAllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "bogus"} {
		log := Setup(config.ServerConfig{LogLevel: level})
		assert.NotNil(t, log, "level %q", level)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	custom := slog.New(slog.NewTextHandler(nil, nil))

	t.Run("nil context returns default", func(t *testing.T) {
		t.Parallel()
		//nolint:staticcheck // deliberately passing nil context
		assert.Equal(t, slog.Default(), FromContext(nil))
	})

	t.Run("empty context returns default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		t.Parallel()
		ctx := WithLogger(context.Background(), custom)
		assert.Equal(t, custom, FromContext(ctx))
	})

	t.Run("fallback used when context has none", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, custom, FromContextOrDefault(context.Background(), custom))
	})

	t.Run("nil logger panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			WithLogger(context.Background(), nil)
		})
	})
}
