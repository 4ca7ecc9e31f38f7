// Package errors provides structured error types for tileplan.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the engine
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (fatal configuration errors)
//   - UNSUPPORTED_*: Requests for features the engine does not implement
//   - SCALE_UNRESOLVED: No real-world measurement to derive a scale from
//   - INTERNAL_*: Unexpected internal errors
//
// Degenerate inputs (too few vertices, empty tile lists) are never errors;
// the engine answers them with zero values.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedPattern, "unsupported pattern: %s", name)
//	if errors.Is(err, errors.ErrCodeUnsupportedPattern) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidTile    Code = "INVALID_TILE"
	ErrCodeInvalidUnit    Code = "INVALID_UNIT"
	ErrCodeInvalidPolygon Code = "INVALID_POLYGON"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Configuration errors
	ErrCodeUnsupportedPattern Code = "UNSUPPORTED_PATTERN"

	// Unresolvable state
	ErrCodeScaleUnresolved Code = "SCALE_UNRESOLVED"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsFatalConfig reports whether err is a configuration error that must stop
// generation ("cannot generate") rather than degrade to an empty result.
func IsFatalConfig(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnsupportedPattern, ErrCodeInvalidTile, ErrCodeInvalidUnit:
		return true
	}
	return false
}

// UnsupportedPattern returns the error raised for an unknown pattern name.
func UnsupportedPattern(name string) *Error {
	return New(ErrCodeUnsupportedPattern, "unsupported pattern: %q", name)
}

// ScaleUnresolved returns the error raised when no dimensioned edge is
// available to derive a pixel-to-unit scale from.
func ScaleUnresolved(format string, args ...any) *Error {
	return New(ErrCodeScaleUnresolved, format, args...)
}
