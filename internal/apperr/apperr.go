// Package apperr carries the subsystem's error taxonomy. Handlers map codes
// to HTTP statuses; services raise them; repositories wrap storage failures
// as Internal so callers never see driver errors.
package apperr

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the class of failure in a stable, machine-readable way
type ErrorCode string

const (
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeForbidden  ErrorCode = "FORBIDDEN"
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeInternal   ErrorCode = "INTERNAL"
)

// Error is a coded application error with an optional wrapped cause
type Error struct {
	ErrCode ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error with a caller-facing message
func New(code ErrorCode, message string) error {
	return &Error{ErrCode: code, Message: message}
}

// Newf creates a coded error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{ErrCode: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error
func Wrap(code ErrorCode, message string, err error) error {
	return &Error{ErrCode: code, Message: message, Err: err}
}

// Code extracts the error code; non-coded errors count as Internal
func Code(err error) ErrorCode {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.ErrCode
	}
	return CodeInternal
}

// Message extracts the caller-facing message; non-coded errors get a generic one
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal error"
}

// Is reports whether err carries the given code
func Is(err error, code ErrorCode) bool {
	return Code(err) == code
}
