// Package logging builds the structured loggers used by the CLI, the TUI and
// the headless simulator.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix tags every log line written by the application.
const Prefix = "cookierun"

// New creates a logger writing to w at the named level
// (debug, info, warn, error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger for the interactive UI. Output cannot share the
// terminal with the alternate screen, so an empty path discards everything;
// otherwise lines are appended to the file at path. The returned close
// function must be called on exit.
func Open(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: failed to open %s: %w", path, err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}

// NewRunID returns a fresh identifier attached to the log lines of one run.
func NewRunID() string {
	return uuid.NewString()
}
