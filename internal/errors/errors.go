// Package errors provides custom error types for the SmartStats API.
// All service-layer errors should use AppError so route handlers can map
// failures to consistent JSON responses without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Clients only ever see the message; the code and internal error exist
// for structured logging.
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

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors. The observed API reports duplicates as 400, not 409.
var (
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username already exists", StatusCode: http.StatusBadRequest}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email already exists", StatusCode: http.StatusBadRequest}
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)

// Dashboard errors. Not-owned resources report not-found so that the API
// never reveals whether a resource exists.
var (
	ErrDashboardNotFound = &AppError{Code: "DASHBOARD_NOT_FOUND", Message: "Dashboard not found", StatusCode: http.StatusNotFound}
)

// Chart errors.
var (
	ErrChartNotFound = &AppError{Code: "CHART_NOT_FOUND", Message: "Chart not found", StatusCode: http.StatusNotFound}
)

// Analysis errors.
var (
	ErrMalformedCSV  = &AppError{Code: "MALFORMED_CSV", Message: "Could not parse CSV data", StatusCode: http.StatusBadRequest}
	ErrMalformedJSON = &AppError{Code: "MALFORMED_JSON", Message: "Malformed JSON document", StatusCode: http.StatusBadRequest}
)
