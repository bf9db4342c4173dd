package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coursehub/internal/entity"
)

// CourseService wraps the /courses resource.
type CourseService struct {
	c *Client
}

func NewCourseService(c *Client) *CourseService {
	return &CourseService{c: c}
}

// All fetches the full catalog. The token is optional; the listing is
// public but authenticated requests carry the bearer token anyway.
func (s *CourseService) All(ctx context.Context, token string) ([]entity.Course, error) {
	var out []entity.Course
	if err := s.c.do(ctx, http.MethodGet, "/courses", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, code string) (*entity.Course, error) {
	var out entity.Course
	if err := s.c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(code), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CourseService) Add(ctx context.Context, course entity.Course) error {
	return s.c.do(ctx, http.MethodPost, "/courses", "", course, nil)
}

func (s *CourseService) Update(ctx context.Context, course entity.Course) error {
	if course.CourseCode == "" {
		return fmt.Errorf("course code is required for update")
	}
	return s.c.do(ctx, http.MethodPut, "/courses/"+url.PathEscape(course.CourseCode), "", course, nil)
}

func (s *CourseService) Delete(ctx context.Context, code string) error {
	return s.c.do(ctx, http.MethodDelete, "/courses/"+url.PathEscape(code), "", nil, nil)
}
