// Package errors defines the structured error type used across terraformer.
//
// Every error that reaches a report or the command line carries an
// ErrorCode so callers (and tests) can branch on the category of failure
// without matching message text.
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

	// Reconciliation outcomes. The first three are benign skips.
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrUserDeclined  ErrorCode = "USER_DECLINED"
	ErrAlreadyLinked ErrorCode = "ALREADY_LINKED"
	ErrIO            ErrorCode = "IO"
	ErrUnsupported   ErrorCode = "UNSUPPORTED_OPERATION"
	ErrPrompt        ErrorCode = "PROMPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Layout errors
	ErrStorageRoot   ErrorCode = "STORAGE_ROOT"
	ErrGroupNotFound ErrorCode = "GROUP_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"

	// External tool errors (inventory glue)
	ErrToolMissing ErrorCode = "TOOL_MISSING"
	ErrToolFailed  ErrorCode = "TOOL_FAILED"
)

// TerraformerError represents a structured error with code and details
type TerraformerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TerraformerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TerraformerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TerraformerError) Is(target error) bool {
	var targetErr *TerraformerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TerraformerError with the given code and message
func New(code ErrorCode, message string) *TerraformerError {
	return &TerraformerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TerraformerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TerraformerError {
	return &TerraformerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TerraformerError
func Wrap(err error, code ErrorCode, message string) *TerraformerError {
	if err == nil {
		return nil
	}
	return &TerraformerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TerraformerError {
	if err == nil {
		return nil
	}
	return &TerraformerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TerraformerError) WithDetail(key string, value interface{}) *TerraformerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// Only the outermost TerraformerError in the chain is consulted.
func IsErrorCode(err error, code ErrorCode) bool {
	var tfErr *TerraformerError
	if errors.As(err, &tfErr) {
		return tfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TerraformerError
func GetErrorCode(err error) ErrorCode {
	var tfErr *TerraformerError
	if errors.As(err, &tfErr) {
		return tfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TerraformerError
func GetErrorDetails(err error) map[string]interface{} {
	var tfErr *TerraformerError
	if errors.As(err, &tfErr) {
		return tfErr.Details
	}
	return nil
}
