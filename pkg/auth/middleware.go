// Package auth provides shared-secret authentication middleware.
//
// Two independent secrets exist: the API key (Authorization header) guards the
// order and batch routes, and the admin key (Admin header) is reserved for
// administrative routes. Keys are compared in constant time.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/ghuser/pressroom/pkg/httpx"
	"github.com/ghuser/pressroom/pkg/logger"
)

// Header names carrying the shared secrets.
const (
	APIKeyHeader   = "Authorization"
	AdminKeyHeader = "Admin"
)

// RequireAPIKey is a chi middleware that enforces the shared API secret.
// Requests whose Authorization header does not match key receive 401.
func RequireAPIKey(key string, log logger.Logger) func(http.Handler) http.Handler {
	return requireKey(APIKeyHeader, key, log)
}

// RequireAdminKey enforces the administrative secret on the Admin header.
// Currently mounted on no route; the administrative route set is still
// being decided with the shop floor.
func RequireAdminKey(key string, log logger.Logger) func(http.Handler) http.Handler {
	return requireKey(AdminKeyHeader, key, log)
}

func requireKey(header, key string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				log.WarnContext(r.Context(), "rejected request with missing or invalid key",
					"header", header, "path", r.URL.Path)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "access forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
