package handler

import (
	"html/template"
	"net/http"
)

type NotFoundHandler struct {
	tmpl *template.Template
}

func NewNotFoundHandler(templatesDir string) *NotFoundHandler {
	return &NotFoundHandler{tmpl: parseTemplate(templatesDir, "notfound.html")}
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.tmpl.Execute(w, map[string]interface{}{"Title": "Page not found"})
}
