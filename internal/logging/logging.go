// Package logging builds the structured logger shared by the CLI and the
// game drivers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	// Path is the log file. Empty means Fallback is used.
	Path string
	// Fallback receives logs when Path is empty. Nil discards them, which is
	// what the interactive driver wants since it owns the terminal.
	Fallback io.Writer
	Level    string
	Prefix   string
}

// New returns a logger tagged with a fresh run ID, plus a close function for
// the log file. The close function is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w       = opts.Fallback
		closeFn = func() error { return nil }
	)
	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", mkErr)
			}
		}
		f, openErr := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", opts.Path, openErr)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "shooter"
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger.With("run", RunID()), closeFn, nil
}

// RunID returns a short random identifier for one process run.
func RunID() string {
	return uuid.NewString()[:8]
}

// ParseLevel accepts debug, info, warn, error and fatal. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
