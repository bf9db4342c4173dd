package handler

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"coursehub/internal/api"
	"coursehub/internal/catalog"
	"coursehub/internal/entity"
	"coursehub/internal/session"
)

type CoursesHandler struct {
	courses    *api.CourseService
	categories *api.CategoryService
	lecturers  *api.LecturerService
	store      *session.Store
	tmpl       *template.Template
	now        func() time.Time
}

func NewCoursesHandler(courses *api.CourseService, categories *api.CategoryService, lecturers *api.LecturerService, store *session.Store, templatesDir string) *CoursesHandler {
	return &CoursesHandler{
		courses:    courses,
		categories: categories,
		lecturers:  lecturers,
		store:      store,
		tmpl:       parseTemplate(templatesDir, "courses.html"),
		now:        time.Now,
	}
}

// courseRow is one rendered catalog entry: the course plus everything the
// view derives from it.
type courseRow struct {
	entity.Course
	Highlighted  bool
	LecturerName string
	Editable     bool
}

type coursesData struct {
	Title           string
	Error           string
	Rows            []courseRow
	Categories      []entity.Category
	LearningMethods []entity.LearningMethod
	Criteria        catalog.Criteria
	Authenticated   bool
	Username        string
}

// AllCourses renders the catalog, narrowed by the filter criteria in the
// query string. The list itself is public; authentication only unlocks
// the editing affordances.
func (h *CoursesHandler) AllCourses(w http.ResponseWriter, r *http.Request) {
	sess := h.store.FromRequest(r)

	data := coursesData{
		Title:           "All courses",
		LearningMethods: entity.LearningMethods(),
		Criteria:        criteriaFromQuery(r),
		Authenticated:   sess.Authenticated(),
	}
	if sess.CurrentUser != nil {
		data.Username = sess.CurrentUser.Username
	}

	courses, err := h.courses.All(r.Context(), sess.Token)
	if err != nil {
		log.Printf("fetch courses: %v", err)
		data.Error = "Could not load the courses, please try again later."
		h.render(w, data)
		return
	}

	categories, err := h.categories.EnsureDefaults(r.Context())
	if err != nil {
		log.Printf("fetch categories: %v", err)
	}
	data.Categories = categories

	names := h.lecturerNames(r)

	now := h.now()
	for _, course := range catalog.Filter(courses, data.Criteria) {
		row := courseRow{
			Course:       course,
			Highlighted:  catalog.StartingSoon(course.StartDate.Time, now),
			LecturerName: names[course.LecturerCode],
		}
		if sess.CurrentUser != nil && sess.CurrentUser.Code == course.LecturerCode {
			row.Editable = true
		}
		data.Rows = append(data.Rows, row)
	}

	h.render(w, data)
}

// lecturerNames fetches the lecturer list once per request and indexes it
// by code. A fetch failure just leaves names blank.
func (h *CoursesHandler) lecturerNames(r *http.Request) map[string]string {
	names := make(map[string]string)
	lecturers, err := h.lecturers.All(r.Context())
	if err != nil {
		log.Printf("fetch lecturers: %v", err)
		return names
	}
	for _, lecturer := range lecturers {
		names[lecturer.Code] = lecturer.Name
	}
	return names
}

func criteriaFromQuery(r *http.Request) catalog.Criteria {
	q := r.URL.Query()
	criteria := catalog.Criteria{
		Name:         q.Get("name"),
		CategoryCode: q.Get("category"),
	}
	if mode := entity.LearningMethod(q.Get("learningMode")); mode.Valid() {
		criteria.LearningMethod = mode
	}
	return criteria
}

func (h *CoursesHandler) render(w http.ResponseWriter, data coursesData) {
	if err := h.tmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
