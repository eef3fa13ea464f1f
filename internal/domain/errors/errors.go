// Package errors defines the application error taxonomy for the discovery
// engine and the stub API server.
package errors

import (
	"net/http"

	"nearshop/internal/errors"
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

// Predefined error types
var (
	// ErrAuthenticationRequired is raised synchronously when a subscription
	// toggle is attempted without a session. No state change occurs.
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Please log in to subscribe to shops",
		"",
	)

	// ErrShopQueryFailed blocks list/map rendering until a retry succeeds.
	ErrShopQueryFailed = NewBaseError(
		http.StatusBadGateway,
		"SHOP_QUERY_FAILED",
		"Unable to fetch nearby shops right now.",
		"",
	)

	// ErrSubscriptionFailed surfaces a failed subscribe/unsubscribe mutation
	// after the optimistic state has been rolled back.
	ErrSubscriptionFailed = NewBaseError(
		http.StatusBadGateway,
		"SUBSCRIPTION_FAILED",
		"Failed to update subscription",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrShopDetailUnknown = NewBaseError(
		http.StatusConflict,
		"SHOP_DETAIL_UNKNOWN",
		"Subscription state for this shop is not loaded",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Radius must be one of 1, 2, 5, 10 or 20 km",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrAlreadySubscribed = NewBaseError(
		http.StatusConflict,
		"ALREADY_SUBSCRIBED",
		"Already subscribed to this shop",
		"",
	)

	ErrNotSubscribed = NewBaseError(
		http.StatusConflict,
		"NOT_SUBSCRIBED",
		"Not subscribed to this shop",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
