package api

import (
	"context"
	"errors"
	"net/http"

	"coursehub/internal/entity"
)

// AuthService wraps POST /login and POST /register.
type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// LoginResponse is what the backend returns for a successful login or
// registration. User is optional; not every backend variant sends it.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. 401 maps to
// ErrWrongCredentials, 404 to ErrNotRegistered; anything else collapses
// into a generic failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := s.c.do(ctx, http.MethodPost, "/login", "", credentials{Username: username, Password: password}, &out)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return nil, ErrWrongCredentials
	case errors.Is(err, ErrNotFound):
		return nil, ErrNotRegistered
	case err != nil:
		return nil, err
	}
	return &out, nil
}

// Register creates the account server-side. Some backends hand a token
// straight back; the caller decides whether to use it or log in again.
func (s *AuthService) Register(ctx context.Context, user entity.User) (*LoginResponse, error) {
	var out LoginResponse
	if err := s.c.do(ctx, http.MethodPost, "/register", "", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
