// Package auth gates protected endpoints on a loadable session. No session
// cookie, or one that no longer resolves, means 401; there is no other
// authentication state.
package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"festfront/internal/lib/api/response"
	"festfront/internal/session"
)

type ctxKey struct{}

func New(log *slog.Logger, store session.Store, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			sess, err := store.Load(r.Context(), cookie.Value)
			if err != nil {
				log.Debug("session rejected", slog.String("reason", err.Error()))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		}

		return http.HandlerFunc(fn)
	}
}

// ContextWithSession attaches a session the way the middleware does.
func ContextWithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session placed by the middleware.
func FromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(session.Session)
	return sess, ok
}
