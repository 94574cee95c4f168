package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger builds the process logger. The returned closer releases the log
// file, if one was opened.
func newLogger(level, path string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closer, nil
}

// sessionLogger tags every entry with a fresh session id.
func sessionLogger(logger *log.Logger) *log.Logger {
	return logger.With("session", uuid.NewString())
}
