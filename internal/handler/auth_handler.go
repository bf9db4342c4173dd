package handler

import (
	"net/http"

	"coursehub/internal/session"
)

type LogoutHandler struct {
	store *session.Store
	hub   *session.Hub
}

func NewLogoutHandler(store *session.Store, hub *session.Hub) *LogoutHandler {
	return &LogoutHandler{store: store, hub: hub}
}

// Logout drops the token and current user together and announces the
// transition before redirecting, so every subscriber sees the logged-out
// state ahead of the navigation.
func (h *LogoutHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.store.FromRequest(r)
	if err := h.store.Clear(w, r); err != nil {
		http.Error(w, "could not clear session", http.StatusInternalServerError)
		return
	}
	if sess.CurrentUser != nil {
		h.hub.Publish(session.Event{Kind: session.LoggedOut, Username: sess.CurrentUser.Username})
	}
	http.Redirect(w, r, "/login?message=You+have+been+logged+out", http.StatusSeeOther)
}
