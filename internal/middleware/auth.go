package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"fortuna_backend/internal/config"
	"fortuna_backend/pkg/token"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// Auth проверяет Bearer токен и кладет id аккаунта в контекст запроса
func Auth(jwtConfig config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, prefix), jwtConfig.AccessTokenSecretKey())
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			accountID, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromContext достает id аккаунта, положенный Auth
func AccountIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(accountIDKey).(int)
	return id, ok
}
