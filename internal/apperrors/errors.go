package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no authenticated user is present.
var ErrUnauthorized = errors.New("not authenticated")

// ErrForbidden indicates that the user is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// ErrNoOrganization indicates that the user does not belong to any organization yet.
var ErrNoOrganization = fmt.Errorf("%w: user has no organization", ErrNotFound)

// AppError carries an HTTP-ish status code and a human readable message
// alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationFailedError returns an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError returns an AppError that matches ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}
