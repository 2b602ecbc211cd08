// Package errors provides custom error types for the budgetly core and its adapters.
// Every failure the core reports is an AppError so callers can discriminate
// on Code without string matching, and HTTP adapters can map it to a status.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Core errors. No state is mutated when a ValidationError is returned.
var (
	ErrValidation      = &AppError{Code: "VALIDATION_ERROR", Message: "A required field is missing or invalid", StatusCode: http.StatusBadRequest}
	ErrIndexOutOfRange = &AppError{Code: "INDEX_OUT_OF_RANGE", Message: "No pending bill at that position", StatusCode: http.StatusNotFound}
	ErrStorage         = &AppError{Code: "STORAGE_ERROR", Message: "Failed to persist changes", StatusCode: http.StatusInternalServerError}
)

// Budget errors.
var (
	ErrNoActiveBudget      = &AppError{Code: "NO_ACTIVE_BUDGET", Message: "No budget period has been set", StatusCode: http.StatusNotFound}
	ErrInsufficientSavings = &AppError{Code: "INSUFFICIENT_SAVINGS", Message: "Donation exceeds accumulated savings", StatusCode: http.StatusBadRequest}
)

// Command adapter errors.
var (
	ErrUnrecognizedCommand = &AppError{Code: "UNRECOGNIZED_COMMAND", Message: "Could not understand command. Try: add expense 500 for food", StatusCode: http.StatusUnprocessableEntity}
)
