package extractor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error the engine returns for a
// structurally invalid transcript.
var ErrInvalidInput = errors.New("invalid transcript")

// InvalidInputError names the offending field of a rejected transcript.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid transcript: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
