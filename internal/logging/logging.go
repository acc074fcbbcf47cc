// Package logging builds the structured logger shared by the CLI and hosts.
// The game owns the terminal while it runs, so log output goes to a file
// or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "flappy"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to path at the given level.
// An empty path yields a logger that discards everything.
// The returned Closer releases the log file.
func New(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	if path == "" {
		return newLogger(io.Discard, lvl), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return newLogger(f, lvl), f, nil
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.InfoLevel)
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
}
