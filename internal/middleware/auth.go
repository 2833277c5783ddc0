package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/token"
	"github.com/skinovaai/skinova/pkg/api"
)

// claimsKey is the context key for authenticated token claims.
type claimsKey struct{}

// Auth rejects requests without a valid bearer token. Verified claims are
// stored in the request context for handlers to read via UserID and Plan.
func Auth(tokens *token.Manager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpx.JSON(w, http.StatusUnauthorized, api.Error{Message: "missing authorization token"})
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Debug("token rejected",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.Any("error", err),
				)
				httpx.JSON(w, http.StatusUnauthorized, api.Error{Message: "session expired, please log in again"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return h[len(prefix):]
	}
	return ""
}

// UserID returns the authenticated user's ID, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	if c, ok := ctx.Value(claimsKey{}).(*token.Claims); ok {
		return c.Subject
	}
	return ""
}

// Plan returns the authenticated user's subscription plan claim.
func Plan(ctx context.Context) string {
	if c, ok := ctx.Value(claimsKey{}).(*token.Claims); ok {
		return c.Plan
	}
	return ""
}
