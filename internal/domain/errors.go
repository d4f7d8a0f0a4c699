package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidLanguage is returned when a language code is outside the
	// supported set.
	ErrInvalidLanguage = errors.New("unsupported language")

	// ErrInvalidDirection is returned when a card direction is neither
	// forward nor reverse.
	ErrInvalidDirection = errors.New("invalid card direction")

	// ErrSameLanguagePair is returned when a language pair has identical
	// source and target languages.
	ErrSameLanguagePair = errors.New("source and target language must differ")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
