// Package errors provides custom error types for the condominio API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Condominium errors.
var (
	ErrCondominiumNotFound = &AppError{Code: "CONDOMINIUM_NOT_FOUND", Message: "Condominium not found", StatusCode: http.StatusNotFound}
)

// Resident errors.
var (
	ErrResidentNotFound = &AppError{Code: "RESIDENT_NOT_FOUND", Message: "Resident not found", StatusCode: http.StatusNotFound}
	ErrResidentHasRows  = &AppError{Code: "RESIDENT_HAS_PAYMENTS", Message: "Resident has recorded payments and cannot be deleted", StatusCode: http.StatusConflict}
)

// Fee type errors.
var (
	ErrPaymentTypeNotFound = &AppError{Code: "PAYMENT_TYPE_NOT_FOUND", Message: "Payment type not found", StatusCode: http.StatusNotFound}
	ErrGastoTipoNotFound   = &AppError{Code: "GASTO_TIPO_NOT_FOUND", Message: "Expense type not found", StatusCode: http.StatusNotFound}
	ErrConceptoNotFound    = &AppError{Code: "CONCEPTO_NOT_FOUND", Message: "Expense concepto not found", StatusCode: http.StatusNotFound}
)

// Payment and expense errors.
var (
	ErrPaymentNotFound  = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Payment not found", StatusCode: http.StatusNotFound}
	ErrGastoNotFound    = &AppError{Code: "GASTO_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePayment = &AppError{Code: "DUPLICATE_PAYMENT", Message: "A paid row already exists for this resident, type, month and year", StatusCode: http.StatusConflict}
	ErrInvalidMonth     = &AppError{Code: "INVALID_MONTH", Message: "Month must be one of the twelve calendar labels", StatusCode: http.StatusBadRequest}
)

// Settings errors.
var (
	ErrSettingNotFound = &AppError{Code: "SETTING_NOT_FOUND", Message: "Setting not found", StatusCode: http.StatusNotFound}
)
