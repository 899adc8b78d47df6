package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/drydock-dev/drydock/internal/services/auth"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Auth creates the bearer-token authentication middleware.
//
// A missing or malformed Authorization header yields a bare 401; a token
// that fails verification yields a bare 403. Both rejections have empty
// bodies. Verification never touches the store, so every request is a pure
// read of the signing secret.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			identity, err := authService.VerifyToken(token)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer token out of the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetIdentity returns the authenticated identity from the request context
func GetIdentity(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityContextKey).(*auth.Identity)
	return identity
}

// MustGetIdentity returns the authenticated identity or panics
func MustGetIdentity(ctx context.Context) *auth.Identity {
	identity := GetIdentity(ctx)
	if identity == nil {
		panic("no identity in context - auth middleware not applied?")
	}
	return identity
}
