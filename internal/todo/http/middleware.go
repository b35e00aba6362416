package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type ctxKey struct{}

// WithPrincipal stores the session user in ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	ctx = context.WithValue(ctx, ctxKey{}, p)
	return httpx.WithUserID(ctx, p.ID)
}

// PrincipalFromContext returns the session user, if the request has one.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(domain.Principal)
	return p, ok && !p.IsZero()
}

// LoadSession resolves the session cookie and attaches the principal to the
// request context. A store failure is logged and the request continues
// without a session.
func LoadSession(sessions *session.Manager, cookie session.Cookie) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := cookie.Read(r)
			if value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			p, ok, err := sessions.Resolve(ctx, value)
			if err != nil {
				slogx.FromContext(ctx).Warn("session lookup failed", slog.Any("error", err))
			}
			if ok {
				ctx = WithPrincipal(ctx, p)
				ctx = slogx.With(ctx, slog.String("user_id", p.ID))
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession answers 401 for requests without a session when enabled.
func RequireSession(enabled bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				todosdk.ErrNotAuthenticated.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
