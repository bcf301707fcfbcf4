package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the cronmatch library

var (
	// ErrMalformedExpression indicates a schedule expression that does not
	// split into exactly 5 or 6 whitespace-separated fields
	ErrMalformedExpression = errors.New("malformed schedule expression")

	// ErrInvalidBounds indicates a field bounds pair whose upper limit is
	// not strictly greater than its lower limit
	ErrInvalidBounds = errors.New("invalid field bounds")

	// ErrInvalidFieldSegment indicates a bounds invariant failure while
	// expanding one named field of a schedule expression
	ErrInvalidFieldSegment = errors.New("invalid field segment")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsMalformed returns true if the error stems from a schedule expression
// with the wrong field count
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedExpression)
}

// IsBoundsFailure returns true if the error stems from a bounds invariant
// violation, either on a raw bounds pair or on a named field
func IsBoundsFailure(err error) bool {
	return errors.Is(err, ErrInvalidBounds) || errors.Is(err, ErrInvalidFieldSegment)
}

// ValidationError provides structured context about a rejected parameter.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) to match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a usage hint and returns the error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}
