// Package util provides logging, error types and small parsing helpers
// shared across flowgate packages.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for recoverable domain conditions
var (
	ErrPoolExhausted   = errors.New("tag pool exhausted")
	ErrTagNotAvailable = errors.New("tag not available")
	ErrNotFound        = errors.New("resource not found")
	ErrNotConnected    = errors.New("store not connected")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// NotFoundError reports a missing resource with its kind and identifier.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}
