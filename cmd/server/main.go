package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"coursehub/internal/api"
	"coursehub/internal/config"
	"coursehub/internal/handler"
	middleware "coursehub/internal/midlleware"
	"coursehub/internal/session"
)

const templatesDir = "internal/templates"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}
	cfg := config.Load()

	client := api.NewClient(cfg.APIBaseURL)
	auth := api.NewAuthService(client)
	users := api.NewUserService(client)
	courses := api.NewCourseService(client)
	categories := api.NewCategoryService(client)
	lecturers := api.NewLecturerService(client)

	store := session.NewStore(cfg.SessionKey)
	hub := session.NewHub()

	// Standing subscriber for the process lifetime: every login/logout
	// lands in the log before the redirect that follows it.
	events, cancel := hub.Subscribe()
	defer cancel()
	go func() {
		for ev := range events {
			log.Printf("auth: %s %s", ev.Kind, ev.Username)
		}
	}()

	login := handler.NewLoginHandler(auth, users, store, hub, templatesDir)
	register := handler.NewRegistrationHandler(auth, users, lecturers, store, hub, templatesDir)
	allCourses := handler.NewCoursesHandler(courses, categories, lecturers, store, templatesDir)
	courseForm := handler.NewCourseFormHandler(courses, categories, lecturers, store, templatesDir)
	logout := handler.NewLogoutHandler(store, hub)

	requireAuth := middleware.RequireAuth(store)

	r := mux.NewRouter()
	r.Use(middleware.RequestLog)

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/login", http.StatusSeeOther)
	})
	r.HandleFunc("/login", login.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", login.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", register.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/register", register.Register).Methods(http.MethodPost)
	r.HandleFunc("/all-courses", allCourses.AllCourses).Methods(http.MethodGet)
	r.HandleFunc("/logout", logout.Logout)

	r.Handle("/add-courses", requireAuth(http.HandlerFunc(courseForm.AddPage))).Methods(http.MethodGet)
	r.Handle("/add-courses", requireAuth(http.HandlerFunc(courseForm.AddSubmit))).Methods(http.MethodPost)
	r.Handle("/edit-course/{code}", requireAuth(http.HandlerFunc(courseForm.EditPage))).Methods(http.MethodGet)
	r.Handle("/edit-course/{code}", requireAuth(http.HandlerFunc(courseForm.EditSubmit))).Methods(http.MethodPost)

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.NotFoundHandler = middleware.RequestLog(handler.NewNotFoundHandler(templatesDir))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("course catalog client listening on %s (backend %s)", cfg.Addr, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
