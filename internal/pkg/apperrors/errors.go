package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")

	// Storage errors
	ErrDataAccess = errors.New("data access error")
)

// Entity errors
var (
	ErrResidentNotFound   = errors.New("resident not found")
	ErrResidentHasRecords = errors.New("resident has associated records and cannot be deleted")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBillNotFound       = errors.New("bill not found")
	ErrRequestNotFound    = errors.New("maintenance request not found")
	ErrEventNotFound      = errors.New("event not found")
)

// NewValidationError creates a field-level validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewDataAccessError wraps a storage failure with the operation that hit it.
// The cause stays server-side; callers only ever see the operation name.
func NewDataAccessError(operation string, cause error) error {
	return &CustomError{
		Err:     ErrDataAccess,
		Message: "data access error in " + operation,
		Cause:   cause,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
