// Package logging builds the charmbracelet/log loggers used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configure a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	File   string // Log file path; empty means Fallback
	Prefix string
}

// New creates a logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel parses a level name; the empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// Open creates a logger from options. Terminal frontends own the screen, so
// they pass io.Discard as fallback when no log file is configured.
// The returned closer releases the log file, if any.
func Open(opts Options, fallback io.Writer) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	if opts.File == "" {
		return New(fallback, opts.Prefix, lvl), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return New(f, opts.Prefix, lvl), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
