// Package logging configures structured logging with tint.
//
// The TUI owns the terminal, so records go to a file rather than stderr.
// An empty path discards everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup opens path, installs a tint handler at the named level as the slog
// default and returns the logger plus a closer for the file.
func Setup(path, level string) (*slog.Logger, io.Closer, error) {
	w, closer, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	logger := New(w, ParseLevel(level))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// New returns a tint logger writing plain (uncoloured) records to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    true,
		}),
	)
}

// ParseLevel maps debug, info, warn and error to slog levels (default: info).
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func open(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return io.Discard, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}
