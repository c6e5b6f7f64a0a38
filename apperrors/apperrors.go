package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation  Kind = "VALIDATION_ERROR"
	KindConflict    Kind = "CONFLICT"
	KindNotFound    Kind = "NOT_FOUND"
	KindUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindInternal    Kind = "INTERNAL_ERROR"
)

// AppError is what the booking core returns to its callers: a kind, a message fit for the
// client and the underlying cause.
type AppError struct {
	Kind       Kind           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retriable reports whether the caller may simply try again.
func (e *AppError) Retriable() bool {
	return e.Kind == KindUnavailable || e.Kind == KindConflict
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// Conflict wraps a sentinel such as booking.ErrSlotTaken so errors.Is keeps working.
func Conflict(message string, err error) *AppError {
	return &AppError{
		Kind:       KindConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NotFound(message string, err error) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func Unavailable(message string, err error) *AppError {
	return &AppError{
		Kind:       KindUnavailable,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func AsAppError(err error) *AppError {
	var appErr *AppError

	if errors.As(err, &appErr) {
		return appErr
	}

	return Internal("an unexpected error occurred", err)
}
