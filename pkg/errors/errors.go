package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies application errors so callers can decide how to
// surface them.
type ErrorType string

const (
	// ErrorTypeValidation indicates bad user input, caught before any
	// network call is made.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeExternal indicates a failure of the remote diagnosis service
	// or the transport to it.
	ErrorTypeExternal ErrorType = "EXTERNAL"

	// ErrorTypeNotFound indicates a resource was not found.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInternal indicates an unexpected internal failure.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the error type carried across service boundaries. Message is
// always safe to show to the user; Err keeps the underlying cause for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewExternalError creates an error representing a remote service failure.
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether err is a validation AppError.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeValidation
}

// UserMessage extracts the user-facing message from err. Unknown error
// types fall back to the provided generic message.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
