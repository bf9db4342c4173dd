package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"coursehub/internal/entity"
)

// UserService wraps the /users resource.
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// ByUsername looks a user up by username. A missing user is (nil, nil),
// not an error; registration uses this as its best-effort duplicate
// check.
func (s *UserService) ByUsername(ctx context.Context, username string) (*entity.User, error) {
	var out entity.User
	err := s.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), "", nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out.Username == "" {
		return nil, nil
	}
	return &out, nil
}

func (s *UserService) Add(ctx context.Context, user entity.User) error {
	return s.c.do(ctx, http.MethodPost, "/users", "", user, nil)
}
