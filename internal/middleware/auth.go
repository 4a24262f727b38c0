package middleware

import (
	"net/http"
	"strings"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
)

// AuthMiddleware validates the Bearer admin token and stores its claims in the context
func AuthMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				writeError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(tokenString))
			if err != nil {
				logging.Warn("Rejected admin token",
					"request_id", auth.GetRequestID(r.Context()),
					"error", err,
				)
				writeError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}

			ctx := auth.SetAdminClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
