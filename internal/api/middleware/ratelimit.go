package middleware

import (
	"fmt"
	"math"
	"net/http"

	"github.com/lpetrosyan/vocab-api/internal/api/shared"
	"github.com/lpetrosyan/vocab-api/internal/ratelimit"
)

// RateLimit throttles authenticated requests through the given limiter.
// Must run after Authenticate, which it relies on for the user ID. Throttled
// requests get a 429 with a Retry-After header.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			if !limiter.Allow(userID) {
				retryAfter := limiter.RetryAfter(userID)
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
					"Too many requests, slow down", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
