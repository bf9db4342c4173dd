package middleware

import (
	"net/http"

	"coursehub/internal/session"
)

// RequireAuth gates a route behind a logged-in session. This is UI gating
// only; the backend still enforces authorization on every call.
func RequireAuth(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.FromRequest(r).Authenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
