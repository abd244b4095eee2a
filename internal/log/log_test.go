package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := ContextWithLogger(context.Background(), logger)
	LoggerFromContext(ctx).Info("hidden")
	LoggerFromContext(ctx).Warn("shown", slog.String("component", "LoginForm"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "component=LoginForm")
	assert.Equal(t, slog.Default(), LoggerFromContext(context.Background()))
}

func TestInitializeDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	var buf bytes.Buffer
	InitializeDefaultLogger(&buf, slog.LevelDebug)
	slog.Debug("walking", slog.Int("depth", 2))
	assert.Contains(t, buf.String(), "depth=2")
}
