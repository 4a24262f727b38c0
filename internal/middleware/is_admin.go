package middleware

import (
	"net/http"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/constants"
)

// IsAdminMiddleware must run after AuthMiddleware
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetAdminClaims(r.Context())
			if !claims.IsAdmin() {
				writeError(w, http.StatusForbidden, constants.MsgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
