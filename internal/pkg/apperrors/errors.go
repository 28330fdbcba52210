package apperrors

import "errors"

// ErrResourceNotFound is matched by every not-found error
var ErrResourceNotFound = errors.New("resource not found")

// Authentication errors
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrSessionNotFound      = errors.New("session not found")
)

// Request errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrTooManyRequests  = errors.New("too many requests")
)

// NewResourceNotFoundError creates a not-found error carrying a client-facing message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError pairs a sentinel with a message safe to show to clients
type CustomError struct {
	Err     error
	Message string
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

// PublicMessage returns the client-facing message of the first CustomError in the chain
func PublicMessage(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
