package mimekit

import (
	"errors"
	"fmt"
)

// Common detection errors
var (
	ErrNotExist      = errors.New("file does not exist")
	ErrNotSupported  = errors.New("operation not supported")
	ErrInvalidConfig = errors.New("invalid config")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a path-like input
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsNotSupported reports whether an error indicates that a stream cannot be
// inspected without consuming it
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
