package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/service"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"word not found", store.ErrWordNotFound, http.StatusNotFound},
		{"no cards due", service.ErrNoCardsDue, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"word exists", store.ErrWordExists, http.StatusConflict},
		{"no active pair", service.ErrNoActivePair, http.StatusConflict},
		{"invalid language", domain.ErrInvalidLanguage, http.StatusBadRequest},
		{"same language pair", domain.ErrSameLanguagePair, http.StatusBadRequest},
		{"generation unavailable", service.ErrGenerationUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCode_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := service.NewServiceError("next card", fmt.Errorf("scoped lookup: %w", store.ErrCardNotFound))
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid email or password"},
		{"email exists", store.ErrEmailExists, "Email already registered"},
		{"word exists", store.ErrWordExists, "Word already exists in this pair"},
		{"no cards due", service.ErrNoCardsDue, "No cards due for review"},
		{"pair not found", store.ErrPairNotFound, "Language pair not found"},
		{"internal detail hidden", errors.New("pq: connection refused host=10.0.0.5"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksDetail(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("connect to postgres://user:hunter2@db:5432: %w", errors.New("timeout"))
	msg := GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "hunter2")
	assert.NotContains(t, msg, "postgres://")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("field and tag extracted", func(t *testing.T) {
		t.Parallel()
		err := shared.ValidateRequest(RegisterRequest{Email: "not-an-email", Password: "long-enough-password"})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "Email")
		assert.Contains(t, msg, "invalid email format")
		assert.NotContains(t, msg, "not-an-email")
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()
		err := shared.ValidateRequest(LoginRequest{Email: "user@example.com"})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "Password")
		assert.Contains(t, msg, "required field")
	})

	t.Run("opaque error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
