package handler

import (
	"html/template"
	"net/http"
	"strings"

	"coursehub/internal/api"
	"coursehub/internal/catalog"
	"coursehub/internal/entity"
	"coursehub/internal/session"
)

type RegistrationHandler struct {
	auth      *api.AuthService
	users     *api.UserService
	lecturers *api.LecturerService
	store     *session.Store
	hub       *session.Hub
	tmpl      *template.Template
}

func NewRegistrationHandler(auth *api.AuthService, users *api.UserService, lecturers *api.LecturerService, store *session.Store, hub *session.Hub, templatesDir string) *RegistrationHandler {
	return &RegistrationHandler{
		auth:      auth,
		users:     users,
		lecturers: lecturers,
		store:     store,
		hub:       hub,
		tmpl:      parseTemplate(templatesDir, "register.html"),
	}
}

type registerForm struct {
	Username   string `validate:"required"`
	Password   string `validate:"required,min=4"`
	Email      string `validate:"required,email"`
	Address    string `validate:"required"`
	IsLecturer bool
	CourseName string
}

type registerData struct {
	Title         string
	Error         string
	Errors        map[string]string
	Form          registerForm
	Authenticated bool
	Username      string
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, registerData{
		Title: "Register",
		Form: registerForm{
			Username:   q.Get("username"),
			Password:   q.Get("password"),
			IsLecturer: q.Get("isLecturer") == "true",
		},
	})
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := registerForm{
		Username:   strings.TrimSpace(r.FormValue("username")),
		Password:   r.FormValue("password"),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Address:    strings.TrimSpace(r.FormValue("address")),
		IsLecturer: r.FormValue("isLecturer") == "true",
		CourseName: strings.TrimSpace(r.FormValue("courseName")),
	}
	if err := validate.Struct(form); err != nil {
		h.render(w, registerData{Title: "Register", Errors: fieldErrors(err), Form: form})
		return
	}
	if form.IsLecturer && form.CourseName == "" {
		h.render(w, registerData{Title: "Register", Errors: map[string]string{"CourseName": "required"}, Form: form})
		return
	}

	// Best-effort duplicate check. The generated code below is advisory
	// either way; the backend owns real uniqueness.
	existing, err := h.users.ByUsername(r.Context(), form.Username)
	if err != nil {
		h.render(w, registerData{Title: "Register", Error: "Could not check the username, please try again.", Form: form})
		return
	}
	if existing != nil {
		h.render(w, registerData{Title: "Register", Error: "User already exists!", Form: form})
		return
	}

	user := entity.User{
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
		Address:  form.Address,
		Code:     catalog.NewUserCode(),
	}
	if err := h.users.Add(r.Context(), user); err != nil {
		h.render(w, registerData{Title: "Register", Error: "Something went wrong while adding the user.", Form: form})
		return
	}

	if form.IsLecturer {
		lecturer := entity.Lecturer{
			Code:       user.Code,
			Name:       user.Username,
			Address:    user.Address,
			Email:      user.Email,
			Password:   user.Password,
			CourseName: form.CourseName,
		}
		if err := h.lecturers.Add(r.Context(), lecturer); err != nil {
			h.render(w, registerData{Title: "Register", Error: "Something went wrong while adding the lecturer.", Form: form})
			return
		}
	}

	h.performLogin(w, r, user)
}

// performLogin signs the fresh account in so registration lands on the
// catalog already authenticated.
func (h *RegistrationHandler) performLogin(w http.ResponseWriter, r *http.Request, user entity.User) {
	resp, err := h.auth.Login(r.Context(), user.Username, user.Password)
	if err != nil || resp.Token == "" {
		http.Redirect(w, r, "/login?message=Registered,+please+sign+in", http.StatusSeeOther)
		return
	}
	if err := h.store.Save(w, r, resp.Token, &user); err != nil {
		http.Redirect(w, r, "/login?message=Registered,+please+sign+in", http.StatusSeeOther)
		return
	}
	h.hub.Publish(session.Event{Kind: session.LoggedIn, Username: user.Username})
	http.Redirect(w, r, "/all-courses", http.StatusSeeOther)
}

func (h *RegistrationHandler) render(w http.ResponseWriter, data registerData) {
	if err := h.tmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
