package handler

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"coursehub/internal/api"
	"coursehub/internal/catalog"
	"coursehub/internal/entity"
	"coursehub/internal/session"
)

// CourseFormHandler serves both the add-course and edit-course views; the
// two differ only in where the course code comes from.
type CourseFormHandler struct {
	courses    *api.CourseService
	categories *api.CategoryService
	lecturers  *api.LecturerService
	store      *session.Store
	tmpl       *template.Template
}

func NewCourseFormHandler(courses *api.CourseService, categories *api.CategoryService, lecturers *api.LecturerService, store *session.Store, templatesDir string) *CourseFormHandler {
	return &CourseFormHandler{
		courses:    courses,
		categories: categories,
		lecturers:  lecturers,
		store:      store,
		tmpl:       parseTemplate(templatesDir, "course_form.html"),
	}
}

type courseForm struct {
	Name            string `validate:"required"`
	CategoryCode    string `validate:"required"`
	NumberOfLessons int    `validate:"required,gt=0"`
	StartDate       string `validate:"required,datetime=2006-01-02"`
	Syllabus        string
	LearningMethod  string `validate:"required,oneof=In-Person Zoom"`
	LecturerCode    string `validate:"required"`
	ImagePath       string
}

type courseFormData struct {
	Title           string
	Mode            string // "add" or "edit"
	CourseCode      string
	Error           string
	Errors          map[string]string
	Form            courseForm
	Categories      []entity.Category
	Lecturers       []entity.Lecturer
	LearningMethods []entity.LearningMethod
	Authenticated   bool
	Username        string
}

func (h *CourseFormHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	data := h.newData(r, "add", "")
	h.render(w, data)
}

func (h *CourseFormHandler) AddSubmit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "add", "")
}

func (h *CourseFormHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	data := h.newData(r, "edit", code)

	course, err := h.courses.Get(r.Context(), code)
	if err != nil {
		data.Error = "Could not load the course."
		h.render(w, data)
		return
	}
	data.Form = courseForm{
		Name:            course.CourseName,
		CategoryCode:    course.CategoryCode,
		NumberOfLessons: course.NumberOfLessons,
		StartDate:       course.StartDate.String(),
		Syllabus:        strings.Join(course.Syllabus, "\n"),
		LearningMethod:  string(course.LearningMethod),
		LecturerCode:    course.LecturerCode,
		ImagePath:       course.ImagePath,
	}
	h.render(w, data)
}

func (h *CourseFormHandler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	h.submit(w, r, "edit", code)
}

func (h *CourseFormHandler) submit(w http.ResponseWriter, r *http.Request, mode, code string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	lessons, _ := strconv.Atoi(r.FormValue("numberOfLessons"))
	form := courseForm{
		Name:            strings.TrimSpace(r.FormValue("name")),
		CategoryCode:    r.FormValue("category"),
		NumberOfLessons: lessons,
		StartDate:       r.FormValue("startDate"),
		Syllabus:        r.FormValue("syllabus"),
		LearningMethod:  r.FormValue("learningMode"),
		LecturerCode:    r.FormValue("lecturerCode"),
		ImagePath:       strings.TrimSpace(r.FormValue("image")),
	}

	data := h.newData(r, mode, code)
	data.Form = form

	if err := validate.Struct(form); err != nil {
		data.Errors = fieldErrors(err)
		h.render(w, data)
		return
	}

	syllabus := splitSyllabus(form.Syllabus)
	if len(syllabus) == 0 {
		data.Error = "The syllabus cannot be empty."
		h.render(w, data)
		return
	}

	if !h.categoryExists(data.Categories, form.CategoryCode) {
		data.Error = "The selected category is invalid."
		h.render(w, data)
		return
	}

	startDate, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		data.Errors = map[string]string{"StartDate": "datetime"}
		h.render(w, data)
		return
	}

	course := entity.Course{
		CourseCode:      code,
		CourseName:      form.Name,
		NumberOfLessons: form.NumberOfLessons,
		StartDate:       entity.NewDate(startDate),
		Syllabus:        syllabus,
		LearningMethod:  entity.LearningMethod(form.LearningMethod),
		LecturerCode:    form.LecturerCode,
		ImagePath:       form.ImagePath,
		CategoryCode:    form.CategoryCode,
	}

	if mode == "add" {
		course.CourseCode = catalog.NewCourseCode()
		err = h.courses.Add(r.Context(), course)
	} else {
		err = h.courses.Update(r.Context(), course)
	}
	if err != nil {
		log.Printf("save course %s: %v", course.CourseCode, err)
		data.Error = "Failed to save the course."
		h.render(w, data)
		return
	}

	http.Redirect(w, r, "/all-courses", http.StatusSeeOther)
}

// newData assembles the reference data every render of the form needs.
// Lookup failures leave the lists empty rather than failing the page.
func (h *CourseFormHandler) newData(r *http.Request, mode, code string) courseFormData {
	data := courseFormData{
		Title:           "Add course",
		Mode:            mode,
		CourseCode:      code,
		LearningMethods: entity.LearningMethods(),
		Authenticated:   true, // route is auth-gated
	}
	if mode == "edit" {
		data.Title = "Edit course"
	}
	if user := h.store.FromRequest(r).CurrentUser; user != nil {
		data.Username = user.Username
	}
	if categories, err := h.categories.All(r.Context()); err == nil {
		data.Categories = categories
	} else {
		log.Printf("fetch categories: %v", err)
	}
	if lecturers, err := h.lecturers.All(r.Context()); err == nil {
		data.Lecturers = lecturers
	} else {
		log.Printf("fetch lecturers: %v", err)
	}
	return data
}

func (h *CourseFormHandler) categoryExists(categories []entity.Category, code string) bool {
	for _, category := range categories {
		if category.Code == code {
			return true
		}
	}
	return false
}

// splitSyllabus turns the textarea contents into topic lines, dropping
// blanks the same way the form always has.
func splitSyllabus(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func (h *CourseFormHandler) render(w http.ResponseWriter, data courseFormData) {
	if err := h.tmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
