package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading and validation.
var (
	// ErrInvalidTrigger indicates a trigger that is not a single
	// punctuation or symbol character.
	ErrInvalidTrigger = errors.New("invalid trigger")

	// ErrInvalidLevel indicates an unknown log level.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidValue indicates a setting of the wrong type or out of range.
	ErrInvalidValue = errors.New("invalid config value")
)

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
