package handler

import (
	"html/template"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"coursehub/internal/entity"
)

var validate = validator.New()

// fieldErrors flattens validator output into field→tag so templates can
// show inline messages next to the offending input.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "invalid input"
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

var tmplFuncs = template.FuncMap{
	"learningModeIcon": func(m entity.LearningMethod) string { return m.Icon() },
}

// parseTemplate loads one view plus the shared navbar from the templates
// directory, in the same per-handler fashion the views were always wired.
func parseTemplate(dir, name string) *template.Template {
	return template.Must(template.New(name).Funcs(tmplFuncs).ParseFiles(
		filepath.Join(dir, name),
		filepath.Join(dir, "navbar.html"),
	))
}
