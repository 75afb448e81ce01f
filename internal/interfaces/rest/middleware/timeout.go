package middleware

import (
	"context"
	"net/http"
	"time"
)

const timeoutBody = `{"error":"Request timed out","code":"TIMEOUT"}`

// Timeout bounds a request. Expiry yields 503 with a JSON error body; the
// headers already set by outer middleware are kept.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			w.Header().Set("Content-Type", "application/json")

			timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
