package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskhive/task-api/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		logger := Setup(config.ServerConfig{LogLevel: level})
		assert.NotNil(t, logger, "Setup should return a logger for level %q", level)
	}
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.Default().With("component", "test")

	// Empty context falls back
	got := FromContextOrDefault(context.Background(), fallback)
	assert.Equal(t, fallback, got)

	// Context logger wins
	ctxLogger := slog.Default().With("trace_id", "abc")
	ctx := WithContext(context.Background(), ctxLogger)
	got = FromContextOrDefault(ctx, fallback)
	assert.Equal(t, ctxLogger, got)

	// Nil fallback yields the default logger
	got = FromContextOrDefault(context.Background(), nil)
	assert.NotNil(t, got)
}
