package middleware

import (
	"context"
	"net/http"
	"time"
)

// NewTimeoutMiddleware bounds every store call made below it. Timed-out
// requests surface as 503 from the handler's error mapping.
func NewTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
