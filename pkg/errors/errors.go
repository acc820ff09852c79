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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors, fatal before any mutation
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrVarUnresolved ErrorCode = "VAR_UNRESOLVED"

	// Per-link errors, abort one link and continue the batch
	ErrEvaluate      ErrorCode = "EVALUATE"
	ErrDecide        ErrorCode = "DECIDE"
	ErrRemove        ErrorCode = "REMOVE"
	ErrBackupMove    ErrorCode = "BACKUP_MOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// DbdmError represents a structured error with code and details
type DbdmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DbdmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DbdmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DbdmError) Is(target error) bool {
	var targetErr *DbdmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DbdmError with the given code and message
func New(code ErrorCode, message string) *DbdmError {
	return &DbdmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DbdmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DbdmError {
	return &DbdmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DbdmError
func Wrap(err error, code ErrorCode, message string) *DbdmError {
	if err == nil {
		return nil
	}
	return &DbdmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DbdmError {
	if err == nil {
		return nil
	}
	return &DbdmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DbdmError) WithDetail(key string, value interface{}) *DbdmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dbdmErr *DbdmError
	if errors.As(err, &dbdmErr) {
		return dbdmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DbdmError
func GetErrorCode(err error) ErrorCode {
	var dbdmErr *DbdmError
	if errors.As(err, &dbdmErr) {
		return dbdmErr.Code
	}
	return ErrUnknown
}
