package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/service"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrNoCardsDue):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrNoActivePair):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidLanguage),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrSameLanguagePair),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrGenerationUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for the error. Internal
// details never pass through; anything unrecognized becomes a generic
// message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this resource"
	case errors.Is(err, service.ErrNoCardsDue):
		return "No cards due for review"
	case errors.Is(err, service.ErrNoActivePair):
		return "No active language pair selected"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, store.ErrWordExists):
		return "Word already exists in this pair"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrPairNotFound):
		return "Language pair not found"
	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrSetNotFound):
		return "Vocabulary set not found"
	case errors.Is(err, domain.ErrInvalidLanguage):
		return "Unsupported language code"
	case errors.Is(err, domain.ErrSameLanguagePair):
		return "Source and target language must differ"
	case errors.Is(err, domain.ErrPasswordTooShort), errors.Is(err, auth.ErrPasswordTooShort):
		return "Password is too short"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	case errors.Is(err, service.ErrGenerationUnavailable):
		return "Content generation is currently unavailable"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short user-facing
// message naming the failing field without echoing submitted values.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return "Invalid " + field + ": " + validationTagMessage(tag)
				}
				return "Invalid " + field
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "uuid":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}
