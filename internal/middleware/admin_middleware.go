package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

// AdminKeyMiddleware guards content management endpoints with a shared
// key presented in X-Admin-Key. An empty configured key disables the
// endpoints entirely.
func AdminKeyMiddleware(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-Admin-Key")
			if adminKey == "" || presented == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(adminKey)) != 1 {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Admin access denied", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
