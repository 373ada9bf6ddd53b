package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup creates a text slog.Logger on stderr at the given level, sets it
// as the process default, and returns it. Level accepts "debug", "info",
// "warn", or "error" (case-insensitive); anything else means info.
func Setup(level string) *slog.Logger {
	return New(os.Stderr, level)
}

// New creates a logger writing to w. Split out from Setup so tests can
// capture output.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
