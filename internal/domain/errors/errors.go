// Package errors defines the application-level error taxonomy.
// Every error that crosses the usecase boundary carries an HTTP status code,
// a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"shopapi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business code, so a copy produced by WithDetails still
// satisfies errors.Is against its taxonomy entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Not-found conditions, one per entity kind.
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Client not found",
		"",
	)

	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"Supplier not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	// Business-rule violations. Both are detected before anything is staged,
	// so the surrounding transaction stays valid.
	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Not enough stock",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Uploaded file is not a decodable image",
		"",
	)

	// Constraint conflicts surfaced by the database at flush or commit.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"The operation conflicts with existing data",
		"",
	)

	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Request validation failed",
		"",
	)
)

// DatabaseError wraps an unexpected low-level database failure while keeping
// the AppError contract for the delivery layer.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseExecuteError creates a DatabaseError from a raw driver error.
func NewDatabaseExecuteError(cause error, message string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_ERROR",
			message,
			cause.Error(),
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying driver error for errors.Is/As chains.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
