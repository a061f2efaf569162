package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/lakefield/tasklist/pkg/jwtx"
	"github.com/lakefield/tasklist/pkg/slogx"
)

// AuthnMiddleware enforces bearer-token authentication. A request without an
// Authorization header gets 401; a token that fails verification or has
// expired gets 403. On success the user id and username are injected into
// the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Access token required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusForbidden, "Invalid token")
				return
			}
			if err := claims.ValidateExpiry(); err != nil {
				WriteError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	return ctx
}
