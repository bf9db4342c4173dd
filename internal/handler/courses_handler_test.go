package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coursehub/internal/api"
	"coursehub/internal/entity"
	"coursehub/internal/session"
)

func newCoursesEnv(t *testing.T, courses []entity.Course) *CoursesHandler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(courses)
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.Category{{Code: "001", Name: "Teaching"}, {Code: "002", Name: "Art & Craft"}})
	})
	mux.HandleFunc("/lecturers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]entity.Lecturer{{Code: "USR-17", Name: "Dana"}})
	})
	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	client := api.NewClient(backend.URL)
	store := session.NewStore([]byte("0123456789abcdef0123456789abcdef"))
	h := NewCoursesHandler(
		api.NewCourseService(client), api.NewCategoryService(client), api.NewLecturerService(client),
		store, testTemplatesDir)
	h.now = func() time.Time { return time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC) }
	return h
}

func getCourses(t *testing.T, h *CoursesHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.AllCourses(w, r)
	return w
}

func TestAllCoursesAppliesQueryFilters(t *testing.T) {
	h := newCoursesEnv(t, []entity.Course{
		{CourseCode: "C1", CourseName: "Yoga", CategoryCode: "002", LearningMethod: entity.Zoom,
			StartDate: entity.NewDate(time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC))},
		{CourseCode: "C2", CourseName: "Cooking", CategoryCode: "001", LearningMethod: entity.InPerson,
			StartDate: entity.NewDate(time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC))},
	})

	w := getCourses(t, h, "/all-courses?name=yo")
	body := w.Body.String()
	if !strings.Contains(body, "Yoga") || strings.Contains(body, "Cooking") {
		t.Fatalf("filter not applied to the rendered list")
	}
	if strings.Contains(body, "Starting soon") {
		t.Fatal("course a month out must not be highlighted")
	}
}

func TestAllCoursesHighlightsImminentCourses(t *testing.T) {
	h := newCoursesEnv(t, []entity.Course{
		{CourseCode: "C1", CourseName: "Yoga", CategoryCode: "002", LearningMethod: entity.Zoom,
			LecturerCode: "USR-17",
			StartDate:    entity.NewDate(time.Date(2024, 9, 23, 0, 0, 0, 0, time.UTC))},
	})

	body := getCourses(t, h, "/all-courses").Body.String()
	if !strings.Contains(body, "Starting soon") {
		t.Fatal("course inside the week window should be highlighted")
	}
	if !strings.Contains(body, "Lecturer: Dana") {
		t.Fatal("lecturer name not resolved from the code")
	}
}

func TestAllCoursesSurvivesBackendFailure(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1")
	store := session.NewStore([]byte("0123456789abcdef0123456789abcdef"))
	h := NewCoursesHandler(
		api.NewCourseService(client), api.NewCategoryService(client), api.NewLecturerService(client),
		store, testTemplatesDir)

	w := getCourses(t, h, "/all-courses")
	if w.Code != http.StatusOK {
		t.Fatalf("page must render despite the failure, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Could not load the courses") {
		t.Fatal("error banner missing")
	}
}
