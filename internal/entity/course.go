package entity

import (
	"fmt"
	"strings"
	"time"
)

// LearningMethod is the course delivery mode. The set is closed, the
// backend stores the same two literal values.
type LearningMethod string

const (
	InPerson LearningMethod = "In-Person"
	Zoom     LearningMethod = "Zoom"
)

// LearningMethods returns every delivery mode a course may use.
func LearningMethods() []LearningMethod {
	return []LearningMethod{InPerson, Zoom}
}

func (m LearningMethod) Valid() bool {
	return m == InPerson || m == Zoom
}

// Icon returns the label shown next to a course's delivery mode.
func (m LearningMethod) Icon() string {
	switch m {
	case InPerson:
		return "In-Person 🧑‍🏫"
	case Zoom:
		return "Zoom 💻"
	default:
		return ""
	}
}

type Category struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IconPath string `json:"iconPath"`
}

type Course struct {
	CourseCode      string         `json:"courseCode"`
	CourseName      string         `json:"courseName"`
	NumberOfLessons int            `json:"numberOfLessons"`
	StartDate       Date           `json:"startDate"`
	Syllabus        []string       `json:"syllabus"`
	LearningMethod  LearningMethod `json:"learningMethod"`
	LecturerCode    string         `json:"lecturerCode"`
	ImagePath       string         `json:"imagePath"`
	CategoryCode    string         `json:"categoryCode"`
}

// Date is a calendar day. The backend is loose about formats: rows created
// through the course form carry "2006-01-02", seeded rows full RFC 3339
// timestamps. Both must parse; output is always the short form.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}
