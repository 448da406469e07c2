// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

const ClaimsKey contextKey = "identity_claims"

type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*Claims, error)
}

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	Email string
	Role  string
}

// OptionalAuth attaches verified claims to the request context when a valid
// bearer token is present. Requests without a token, or with an invalid one,
// pass through unchanged; no route requires authentication.
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				slog.Debug("ignoring unverifiable bearer token",
					"request_id", GetRequestID(r.Context()),
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
