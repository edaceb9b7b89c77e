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

// ErrUnauthorized indicates bad credentials or a bad/expired token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrHashing indicates that a password could not be hashed.
var ErrHashing = errors.New("password hashing failed")

// AppError carries an HTTP-ish status code alongside a message and an optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewConflictError reports a uniqueness conflict. It matches ErrDuplicate with errors.Is.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError reports invalid input. It matches ErrValidation with errors.Is.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message, Err: ErrValidation}
}

// IsConflict reports whether err is (or wraps) a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// NewUnauthorizedError reports an authentication failure. It matches ErrUnauthorized with errors.Is.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}
