// Package errors provides the coded error type used for failures that end an
// invocation. Routine reconciliation findings (conflicts) are never errors;
// they are reported as warnings and counted by the controller.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrProfileConfig ErrorCode = "PROFILE_CONFIG"

	// FileSystem errors
	ErrFileRead      ErrorCode = "FILE_READ"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRead   ErrorCode = "SYMLINK_READ"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
)

// DotError represents a structured error with code and details
type DotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotError with the same code.
func (e *DotError) Is(target error) bool {
	var targetErr *DotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotError with the given code and message
func New(code ErrorCode, message string) *DotError {
	return &DotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DotError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DotError) WithDetail(key string, value interface{}) *DotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotError
func GetErrorCode(err error) ErrorCode {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotError
func GetErrorDetails(err error) map[string]interface{} {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Details
	}
	return nil
}
