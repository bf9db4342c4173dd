package api

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the request
	// with 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBackend wraps every other error status.
	ErrBackend = errors.New("backend error")

	// ErrWrongCredentials is returned by Login when the username exists
	// but the password does not match.
	ErrWrongCredentials = errors.New("wrong username or password")
	// ErrNotRegistered is returned by Login when the username is unknown
	// server-side. Callers treat it as "offer registration", not as a
	// terminal login failure.
	ErrNotRegistered = errors.New("user not registered")
)
