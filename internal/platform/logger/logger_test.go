package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected slog.Level
		wantErr  bool
	}{
		{raw: "debug", expected: slog.LevelDebug},
		{raw: "info", expected: slog.LevelInfo},
		{raw: "warn", expected: slog.LevelWarn},
		{raw: "error", expected: slog.LevelError},
		{raw: "WARN", expected: slog.LevelWarn},
		{raw: "verbose", expected: slog.LevelInfo, wantErr: true},
		{raw: "", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			level, err := parseLevel(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestSetup(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		logger, err := Setup(LoggerConfig{Level: "debug"})
		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := Setup(LoggerConfig{Level: "verbose"})
		require.NoError(t, err)
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestLoggerContext(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round trip", func(t *testing.T) {
		ctx := WithContext(context.Background(), attached)
		assert.Same(t, attached, FromContext(ctx))
		assert.Same(t, attached, FromContextOrDefault(ctx, nil))
	})

	t.Run("empty context falls back", func(t *testing.T) {
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("nil context falls back", func(t *testing.T) {
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, fallback, FromContextOrDefault(nil, fallback))
	})
}
