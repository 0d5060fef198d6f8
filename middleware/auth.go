package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/propertypal/pms-backend/controllers"
	"github.com/propertypal/pms-backend/utils"
)

// AuthMiddleware guards the /api subtree with a bearer JWT.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenHeader := r.Header.Get("Authorization")
			if tokenHeader == "" {
				slog.Warn("missing Authorization header", "method", r.Method, "url", r.URL.Path)
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			tokenParts := strings.Split(tokenHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				slog.Warn("invalid Authorization header format", "method", r.Method, "url", r.URL.Path)
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ValidateJWT(secret, tokenParts[1])
			if err != nil {
				slog.Warn("invalid or expired token", "error", err)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
