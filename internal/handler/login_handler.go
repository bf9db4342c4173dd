package handler

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"coursehub/internal/api"
	"coursehub/internal/session"
)

type LoginHandler struct {
	auth  *api.AuthService
	users *api.UserService
	store *session.Store
	hub   *session.Hub
	tmpl  *template.Template
}

func NewLoginHandler(auth *api.AuthService, users *api.UserService, store *session.Store, hub *session.Hub, templatesDir string) *LoginHandler {
	return &LoginHandler{
		auth:  auth,
		users: users,
		store: store,
		hub:   hub,
		tmpl:  parseTemplate(templatesDir, "login.html"),
	}
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type loginData struct {
	Title         string
	Error         string
	Message       string
	Errors        map[string]string
	Username      string
	Authenticated bool
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.store.FromRequest(r).Authenticated() {
		http.Redirect(w, r, "/all-courses", http.StatusSeeOther)
		return
	}
	h.render(w, loginData{
		Title:    "Sign in",
		Message:  r.URL.Query().Get("message"),
		Username: r.URL.Query().Get("username"),
	})
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		h.render(w, loginData{Title: "Sign in", Errors: fieldErrors(err), Username: form.Username})
		return
	}

	resp, err := h.auth.Login(r.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, api.ErrNotRegistered):
		// Unknown user is an invitation to register, not a dead end. The
		// attempted credentials ride along as prefill.
		h.redirectToRegister(w, r, form)
		return
	case errors.Is(err, api.ErrWrongCredentials):
		h.render(w, loginData{Title: "Sign in", Error: "Wrong username or password, try again.", Username: form.Username})
		return
	case err != nil:
		h.render(w, loginData{Title: "Sign in", Error: "Login failed, please try again later.", Username: form.Username})
		return
	}

	if resp.Token == "" {
		h.render(w, loginData{Title: "Sign in", Error: "Login failed: no token received.", Username: form.Username})
		return
	}

	user := resp.User
	if user == nil {
		user, err = h.users.ByUsername(r.Context(), form.Username)
		if err != nil || user == nil {
			h.redirectToRegister(w, r, form)
			return
		}
	}

	if err := h.store.Save(w, r, resp.Token, user); err != nil {
		h.render(w, loginData{Title: "Sign in", Error: "Could not start a session.", Username: form.Username})
		return
	}
	h.hub.Publish(session.Event{Kind: session.LoggedIn, Username: user.Username})

	http.Redirect(w, r, "/all-courses", http.StatusSeeOther)
}

func (h *LoginHandler) redirectToRegister(w http.ResponseWriter, r *http.Request, form loginForm) {
	q := url.Values{}
	q.Set("username", form.Username)
	q.Set("password", form.Password)
	http.Redirect(w, r, "/register?"+q.Encode(), http.StatusSeeOther)
}

func (h *LoginHandler) render(w http.ResponseWriter, data loginData) {
	if err := h.tmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
