package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey reports a mandatory key absent from the file.
	ErrMissingKey = errors.New("missing key")
	// ErrInvalidValue reports a key whose value cannot start a session.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnsupportedFormat reports a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Error is a fatal startup configuration problem.
type Error struct {
	Path string // file the config came from, "<embedded>" for the default
	Key  string // dotted key, empty when the whole file is at fault
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %s: %v", e.Path, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func missing(path, key string) error {
	return &Error{Path: path, Key: key, Err: ErrMissingKey}
}

func invalid(path, key, format string, args ...any) error {
	return &Error{Path: path, Key: key, Err: fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))}
}
