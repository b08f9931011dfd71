package errors

import (
	"errors"
	"fmt"
)

var (
	// Generic errors
	ErrInternal       = errors.New("internal server error")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")

	// Resource-specific errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already in use")
	ErrUsernameExists     = errors.New("username already in use")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectNameExists  = errors.New("project name already exists")
	ErrMemberNotFound     = errors.New("project member not found")
	ErrMemberExists       = errors.New("user is already a member of this project")
	ErrCredentialNotFound = errors.New("project credential not found")
	ErrSpecNotFound       = errors.New("api spec not found")
	ErrInvalidSpecContent = errors.New("invalid spec content")
	ErrInvalidSchedule    = errors.New("invalid schedule")
)

// AppError carries a user-facing message, an API error code and the wrapped cause.
type AppError struct {
	Err     error
	Message string
	Code    string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// NewAppError creates a new application error.
func NewAppError(err error, message string, code string) *AppError {
	return &AppError{Err: err, Message: message, Code: code}
}

// IsNotFound reports whether err is one of the "not found" errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrCredentialNotFound) ||
		errors.Is(err, ErrSpecNotFound)
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrUsernameExists) ||
		errors.Is(err, ErrProjectNameExists) ||
		errors.Is(err, ErrMemberExists)
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// IsBadRequest reports whether err is a malformed-request error.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidSpecContent) ||
		errors.Is(err, ErrInvalidSchedule)
}
