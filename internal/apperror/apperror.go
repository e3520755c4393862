// Package apperror defines the application error taxonomy and its mapping
// to HTTP status codes, so handlers can translate any service error into a
// consistent {"error": message} response.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of an application error.
type ErrorType int

const (
	// InternalError represents an unexpected store or server failure
	InternalError ErrorType = iota
	// ValidationError represents a missing/invalid required field or enum value
	ValidationError
	// UnauthorizedError represents bad credentials or a missing/expired/invalid token
	UnauthorizedError
	// NotFoundError represents an unknown category/feature/user id
	NotFoundError
	// ConflictError represents a duplicate resource, e.g. an existing username
	ConflictError
)

// AppError is the custom error type carried between services and handlers.
// It wraps an optional underlying error for debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlying,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) *AppError {
	return New(ValidationError, message, nil)
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string) *AppError {
	return New(UnauthorizedError, message, nil)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message, nil)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) *AppError {
	return New(ConflictError, message, nil)
}

// NewInternalError creates a new InternalError wrapping the underlying cause.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// FromError converts err into an *AppError, wrapping unknown errors as internal.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("unexpected error", err)
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflict checks if an error is a Conflict error
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}

// IsUnauthorized checks if an error is an Unauthorized error
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == UnauthorizedError
}
