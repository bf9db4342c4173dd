package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"coursehub/internal/entity"
)

// LecturerService wraps the /lecturers resource.
type LecturerService struct {
	c *Client
}

func NewLecturerService(c *Client) *LecturerService {
	return &LecturerService{c: c}
}

func (s *LecturerService) All(ctx context.Context) ([]entity.Lecturer, error) {
	var out []entity.Lecturer
	if err := s.c.do(ctx, http.MethodGet, "/lecturers", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LecturerService) ByCode(ctx context.Context, code string) (*entity.Lecturer, error) {
	var out entity.Lecturer
	if err := s.c.do(ctx, http.MethodGet, "/lecturers/"+url.PathEscape(strings.TrimSpace(code)), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LecturerService) Add(ctx context.Context, lecturer entity.Lecturer) error {
	return s.c.do(ctx, http.MethodPost, "/lecturers", "", lecturer, nil)
}
