package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	UserNotFound       ErrorCode = "user_not_found"
	InvalidAmount      ErrorCode = "invalid_amount"
	ReceiverNotFound   ErrorCode = "receiver_not_found"
	InsufficientFunds  ErrorCode = "insufficient_funds"
	CredentialMismatch ErrorCode = "credential_mismatch"
	InvalidInput       ErrorCode = "invalid_input"
	InternalError      ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Details: details}
}

// HTTPStatus maps an error code to the status used when the error surfaces at
// the protocol boundary. Domain failures inside the assistant pipeline are
// converted to envelopes instead and never reach this mapping.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case UserNotFound, ReceiverNotFound:
		return http.StatusNotFound
	case InvalidAmount, InvalidInput, InsufficientFunds:
		return http.StatusBadRequest
	case CredentialMismatch:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrUserNotFound       = NewAppError(UserNotFound, "account not found")
	ErrInvalidAmount      = NewAppError(InvalidAmount, "amount must be a positive integer")
	ErrReceiverNotFound   = NewAppError(ReceiverNotFound, "receiver not found")
	ErrInsufficientFunds  = NewAppError(InsufficientFunds, "insufficient balance")
	ErrCredentialMismatch = NewAppError(CredentialMismatch, "incorrect password")
	ErrSameAccount        = NewAppError(InvalidInput, "cannot transfer to the same account")
)
