package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gnames/gtdbdl/pkg/config"
	"github.com/gnames/gtdbdl/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, logger.ParseLevel(tt.level),
			"level %q", tt.level)
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(
		config.LogConfig{Level: "warn", Format: "json"}, &buf)

	log.Info("dropped")
	log.Warn("kept", "genomes", 3)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"kept"`)
	assert.Contains(t, out, `"genomes":3`)
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(
		config.LogConfig{Level: "info", Format: "text"}, &buf)

	log.Info("downloaded", "count", 2)
	assert.Contains(t, buf.String(), "msg=downloaded")
}
