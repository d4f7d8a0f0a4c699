package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/ratelimit"
)

func authedRequest(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest("GET", "/review/next", nil)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestRateLimit_AllowsWithinBudget(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New([]ratelimit.Window{
		{Duration: time.Minute, PerUser: 3, Global: 100},
	})
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(userID))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_ThrottlesWithRetryAfter(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New([]ratelimit.Window{
		{Duration: time.Minute, PerUser: 1, Global: 100},
	})
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	userID := uuid.New()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(userID))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(userID))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(ratelimit.DefaultWindows())
	handler := RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/review/next", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
