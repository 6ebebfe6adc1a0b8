// Package logging configures the process-wide slog logger. The TUI owns
// stdout, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a config string to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Setup opens (appending) the log file at path, installs a logger on it
// as the slog default and returns a close func. If the file cannot be
// opened logs are discarded and the error is returned alongside a no-op
// close so callers can warn and carry on.
func Setup(path, level string) (func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		slog.SetDefault(New(io.Discard, level))
		return noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.SetDefault(New(io.Discard, level))
		return noop, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(New(io.Discard, level))
		return noop, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(New(f, level))
	return f.Close, nil
}
