package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-facing and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.TechnicalMessage)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.TechnicalMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeUpstream   = "UPSTREAM_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// NewValidationError reports a missing or malformed request body.
func NewValidationError(technicalMessage string, err error) *AppError {
	return NewAppError(technicalMessage, MsgRedfinURLRequired, ErrCodeValidation, http.StatusBadRequest, err)
}

// NewNotFoundError reports an unmapped route.
func NewNotFoundError(technicalMessage string) *AppError {
	return NewAppError(technicalMessage, MsgResourceNotFound, ErrCodeNotFound, http.StatusNotFound, nil)
}

// NewUpstreamError reports a failed or unusable provider call. The client
// only ever sees the generic internal error message.
func NewUpstreamError(technicalMessage string, err error) *AppError {
	return NewAppError(technicalMessage, MsgInternalError, ErrCodeUpstream, http.StatusInternalServerError, err)
}

// NewInternalError reports any other unexpected fault.
func NewInternalError(technicalMessage string, err error) *AppError {
	return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
}
