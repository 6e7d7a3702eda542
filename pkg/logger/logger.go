// Package logger builds the application's slog.Logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gtdbdl/pkg/config"
)

// New creates a slog.Logger according to the logging configuration.
// Invalid values fall back to Info level and text format. Logs go to
// stderr so they never interleave with progress output.
func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level. Valid levels are
// debug, info, warn and error, case-insensitive; anything else is Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
