// Package errors provides structured errors for the kanjipath boundaries.
//
// Library packages keep plain sentinel errors; this package exists for the
// CLI and the HTTP API, where errors need machine-readable codes and
// user-presentable messages.
//
// Error codes follow a hierarchical convention:
//   - INVALID_*: input validation failures
//   - NOT_FOUND_*: resource not found
//   - INTERNAL_*: unexpected internal errors
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidRecord, "line %d: bad stroke count", line)
//	if errors.Is(err, errors.ErrCodeInvalidRecord) {
//	    // handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Error codes surfaced by the CLI and HTTP API.
const (
	// Input validation
	ErrCodeInvalidRecord    Code = "INVALID_RECORD"
	ErrCodeInvalidTerm      Code = "INVALID_TERM"
	ErrCodeInvalidGraph     Code = "INVALID_GRAPH"
	ErrCodeInvalidMethod    Code = "INVALID_METHOD"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeUnknownComponent Code = "UNKNOWN_COMPONENT"

	// Resources
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeCharacterNotFound Code = "CHARACTER_NOT_FOUND"
	ErrCodeOrderingNotFound  Code = "ORDERING_NOT_FOUND"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Ordering
	ErrCodeIncompleteOrder Code = "INCOMPLETE_ORDER"

	// Internal
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnavailable Code = "UNAVAILABLE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable error code
	Message string // human-readable message
	Cause   error  // underlying error, optional
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, or "" for plain errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values,
// or the error string as-is for plain errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
