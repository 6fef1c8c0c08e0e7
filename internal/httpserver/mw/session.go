package mw

import (
	"context"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/session"
)

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "folio_session"

type contextKey string

const sessionContextKey contextKey = "session"

// Sessions attaches the caller's session to the request context, creating
// one (and setting the cookie) when the cookie is missing or unknown, e.g.
// after a restart.
func Sessions(reg *session.Registry, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if c, err := r.Cookie(SessionCookieName); err == nil {
				sess, _ = reg.Get(c.Value)
			}
			if sess == nil {
				sess = reg.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession stores sess in ctx.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFrom returns the session set by Sessions, or nil.
func SessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// RequireAdmin rejects requests whose session is not authenticated.
// Browser form posts are sent back to /admin (which shows the login form);
// API calls get a bare 401.
func RequireAdmin(api bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFrom(r.Context())
			if sess == nil || !sess.Authenticated() {
				if api {
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
					return
				}
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
