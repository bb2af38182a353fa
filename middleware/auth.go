package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"notekeep/token"
)

type identityKey struct{}

// WithIdentity stores the verified identity in the context.
func WithIdentity(ctx context.Context, id *token.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom retrieves the identity placed by RequireAuth, if any.
func IdentityFrom(ctx context.Context) (*token.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*token.Identity)
	return id, ok
}

// RequireAuth reads the Bearer token from the Authorization header. A
// missing or malformed header is 401; a present but unverifiable token is
// 403. On success the identity is attached to the request context.
func RequireAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				deny(w, http.StatusUnauthorized, "authorization header missing")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				deny(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			identity, err := tokens.Verify(strings.TrimSpace(tokenStr))
			if err != nil {
				deny(w, http.StatusForbidden, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
