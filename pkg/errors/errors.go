package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Repository and profile discovery errors
	ErrRepoConfig     ErrorCode = "REPO_CONFIG"
	ErrProfileResolve ErrorCode = "PROFILE_RESOLVE"

	// Reconciliation errors
	ErrMatchInconsistent ErrorCode = "MATCH_INCONSISTENT"

	// External tool errors
	ErrViewerExecute ErrorCode = "VIEWER_EXECUTE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// DiffmaskError represents a structured error with code and details
type DiffmaskError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DiffmaskError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DiffmaskError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DiffmaskError) Is(target error) bool {
	var targetErr *DiffmaskError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DiffmaskError with the given code and message
func New(code ErrorCode, message string) *DiffmaskError {
	return &DiffmaskError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DiffmaskError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DiffmaskError {
	return &DiffmaskError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DiffmaskError
func Wrap(err error, code ErrorCode, message string) *DiffmaskError {
	if err == nil {
		return nil
	}
	return &DiffmaskError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DiffmaskError {
	if err == nil {
		return nil
	}
	return &DiffmaskError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DiffmaskError) WithDetail(key string, value interface{}) *DiffmaskError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dmErr *DiffmaskError
	if errors.As(err, &dmErr) {
		return dmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DiffmaskError
func GetErrorCode(err error) ErrorCode {
	var dmErr *DiffmaskError
	if errors.As(err, &dmErr) {
		return dmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DiffmaskError
func GetErrorDetails(err error) map[string]interface{} {
	var dmErr *DiffmaskError
	if errors.As(err, &dmErr) {
		return dmErr.Details
	}
	return nil
}
