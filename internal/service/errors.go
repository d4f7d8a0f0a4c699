package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected conditions. Callers check these with
// errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrNotOwned indicates a resource belongs to a different user than the
	// one making the request. Maps to HTTP 403.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNoCardsDue indicates the scope has no card whose review time has
	// arrived. Maps to HTTP 404 on the next-card endpoint.
	ErrNoCardsDue = errors.New("no cards due for review")

	// ErrInvalidCredentials indicates a failed login attempt. Deliberately
	// covers both unknown email and wrong password. Maps to HTTP 401.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoActivePair indicates the user has not selected a language pair
	// yet. Maps to HTTP 409.
	ErrNoActivePair = errors.New("no active language pair selected")

	// ErrGenerationUnavailable indicates word content generation is not
	// configured or the provider failed. Maps to HTTP 503.
	ErrGenerationUnavailable = errors.New("word content generation unavailable")
)

// ServiceError wraps unexpected failures with the operation that produced
// them so handlers can log uniformly while errors.Is still reaches the cause.
type ServiceError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError for the given operation.
func NewServiceError(operation string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Err: err}
}
