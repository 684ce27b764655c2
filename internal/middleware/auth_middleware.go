package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/binit-singh7/shanti-yuwa-club/internal/services"
	"github.com/binit-singh7/shanti-yuwa-club/internal/utils"
)

type contextKey string

const (
	ContextKeyMemberID = contextKey("memberID")

	// No Domain attribute allowed with the __Host- prefix.
	AccessTokenCookieName = "__Host-accessToken"
)

// AuthMiddleware protects member portal endpoints. The JWT is read
// from Authorization: Bearer, falling back to the access token cookie
// for browser sessions. Missing or invalid tokens get 401.
func AuthMiddleware(jwtService services.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractAccessToken(r)
			if tokenStr == "" {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing access token", nil,
				)
				return
			}

			memberID, err := jwtService.ParseAccessToken(tokenStr)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyMemberID, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberIDFromContext returns the authenticated member ID set by
// AuthMiddleware, or uuid.Nil when the request was not authenticated.
func MemberIDFromContext(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(ContextKeyMemberID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func extractAccessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(AccessTokenCookieName); err == nil {
		return c.Value
	}
	return ""
}
