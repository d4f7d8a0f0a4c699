package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/config"
	"github.com/lpetrosyan/vocab-api/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:              "test-secret-thats-long-enough-for-hmac-256",
		TokenLifetimeMinutes:   60,
		RefreshLifetimeMinutes: 1440,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	jwtService := newTestJWTService(t)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	mw := NewAuthMiddleware(jwtService)
	req := httptest.NewRequest("GET", "/words", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthenticate_Rejections(t *testing.T) {
	t.Parallel()

	jwtService := newTestJWTService(t)
	refreshToken, err := jwtService.GenerateRefreshToken(context.Background(), uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"refresh token on access route", "Bearer " + refreshToken},
	}

	mw := NewAuthMiddleware(jwtService)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/words", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	_, ok := GetUserID(req)
	assert.False(t, ok)
}
