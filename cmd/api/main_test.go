package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-server/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"unknown defaults to info", "unknown", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
		{"uppercase not handled", "DEBUG", slog.LevelInfo}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.level))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Format = "json"

		logger := setupLogger(cfg)
		require.NotNil(t, logger)
		assert.Equal(t, logger, slog.Default())
	})

	t.Run("text format", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Format = "text"

		logger := setupLogger(cfg)
		require.NotNil(t, logger)
	})
}
