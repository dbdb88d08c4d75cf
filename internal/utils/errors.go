package utils

import (
	"errors"
	"fmt"
)

// InputError represents malformed or out-of-range request data. It is
// raised before any ephemeris work happens.
type InputError struct {
	Message string
}

// Error returns the error message string.
func (e *InputError) Error() string {
	return e.Message
}

// NewInputError creates a new InputError with a specific message.
func NewInputError(message string) error {
	return &InputError{Message: message}
}

// NewInputErrorf creates a new InputError with a formatted message.
func NewInputErrorf(format string, args ...interface{}) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// EphemerisError wraps a failure from the ephemeris provider: missing
// backing data or an unsupported instant/location. The message is
// surfaced verbatim to the caller since unavailable ephemeris data is
// the most common operational failure.
type EphemerisError struct {
	Message string
	Cause   error
}

func (e *EphemerisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *EphemerisError) Unwrap() error {
	return e.Cause
}

// NewEphemerisError creates a new EphemerisError wrapping an underlying
// cause.
func NewEphemerisError(message string, cause error) error {
	return &EphemerisError{Message: message, Cause: cause}
}

// ComputationError signals a violated internal invariant, e.g. dasha
// periods failing to tile the 120-year cycle. It indicates a bug, never
// bad input.
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string {
	return e.Message
}

// NewComputationErrorf creates a new ComputationError with a formatted
// message.
func NewComputationErrorf(format string, args ...interface{}) error {
	return &ComputationError{Message: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsEphemerisError reports whether err is (or wraps) an EphemerisError.
func IsEphemerisError(err error) bool {
	var ee *EphemerisError
	return errors.As(err, &ee)
}
