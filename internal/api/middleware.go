package api

import (
	"net/http"
	"strings"
	"time"

	"sportlebanon/internal/admins"
	"sportlebanon/pkg/config"
)

// AdminAuth validates admin access tokens.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// The admin record is reloaded from the DB on every request so a role change
// or account removal takes effect without waiting for token expiry.
func AdminAuth(cfg config.Config, adminsRepo *admins.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
				return
			}
			token := strings.TrimSpace(authz[7:])

			claims, err := admins.VerifyToken(cfg.Auth.JWTSecret, token, time.Now())
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			a, err := adminsRepo.GetByID(r.Context(), claims.Subject)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown admin")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), a)))
		})
	}
}
