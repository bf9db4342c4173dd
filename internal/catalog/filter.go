package catalog

import (
	"strings"

	"coursehub/internal/entity"
)

// Criteria is the user-adjustable set of predicates narrowing the course
// list. A zero-value field means "no constraint".
type Criteria struct {
	Name           string
	CategoryCode   string
	LearningMethod entity.LearningMethod
}

func (c Criteria) Empty() bool {
	return c.Name == "" && c.CategoryCode == "" && c.LearningMethod == ""
}

// Filter returns the courses matching every set criterion, preserving the
// input order. An empty criterion excludes nothing; criteria that match
// nothing yield an empty result, not an error.
func Filter(courses []entity.Course, c Criteria) []entity.Course {
	out := make([]entity.Course, 0, len(courses))
	for _, course := range courses {
		if Matches(course, c) {
			out = append(out, course)
		}
	}
	return out
}

// Matches reports whether a single course passes the criteria. The name
// predicate is a case-insensitive substring match on the course name; the
// category and learning-method predicates are exact matches.
func Matches(course entity.Course, c Criteria) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(course.CourseName), strings.ToLower(c.Name)) {
		return false
	}
	if c.CategoryCode != "" && course.CategoryCode != c.CategoryCode {
		return false
	}
	if c.LearningMethod != "" && course.LearningMethod != c.LearningMethod {
		return false
	}
	return true
}
