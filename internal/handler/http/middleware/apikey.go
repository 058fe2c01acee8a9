package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/handler/http/response"
)

// RequireAPIKey rejects requests whose X-API-KEY header does not match
// the configured key. The comparison is constant-time.
func RequireAPIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-KEY")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid API Key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
