package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type ctxIdentityKey struct{}

// Middleware extracts a bearer token from the Authorization header, verifies
// it, and binds the resulting identity to the request context. A missing or
// non-Bearer header is rejected with 401, a token that fails verification
// with 403. This is the only authorization gate; handlers must take the
// acting email from the context, never from the request body.
func Middleware(tokens *TokenService, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				rejectJSON(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
				return
			}
			identity, err := tokens.Verify(raw)
			if err != nil {
				logger.Printf("auth: token rejected: %v", err)
				rejectJSON(w, http.StatusForbidden, "FORBIDDEN", "Invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxIdentityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the identity bound by Middleware, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(ctxIdentityKey{}).(Identity)
	return identity, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func rejectJSON(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": code, "message": message})
}
