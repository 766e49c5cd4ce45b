package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/slotocki/flashcards/internal/config"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	tests := []struct {
		name       string
		level      string
		debugShown bool
		warnLogged bool
	}{
		{"debug", "debug", true, false},
		{"info", "INFO", false, false},
		{"error", "error", false, false},
		{"invalid falls back to info", "verbose", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: tt.level}, &buf)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Same(t, l, slog.Default())

			if tt.warnLogged {
				assert.Contains(t, buf.String(), "invalid log level configured")
			}
			buf.Reset()

			l.Debug("debug message")
			assert.Equal(t, tt.debugShown, strings.Contains(buf.String(), "debug message"))
		})
	}
}

func TestSetupWithWriter_JSON(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	l.Info("hello", slog.String("component", "test"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "test", entry["component"])
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{"nil_context_returns_default", nil, defaultLogger},
		{"context_without_logger_returns_default", context.Background(), defaultLogger},
		{"context_with_logger_returns_context_logger", logger.WithLogger(context.Background(), customLogger), customLogger},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Same(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		t.Parallel()
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Same(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	lvl, ok := logger.ParseLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, ok = logger.ParseLevel("trace")
	assert.False(t, ok)
}
