package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/sessions"

	"coursehub/internal/entity"
)

const (
	sessionName = "coursehub-session"

	// Value keys, named after the browser session-storage keys they
	// replace.
	keyToken = "jwtToken"
	keyUser  = "currentUser"
)

// Store keeps the bearer token and current user for a browser session,
// backed by an encrypted cookie. Every request re-reads the cookie, so
// rehydration after a restart of the page is inherent.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(authKey []byte) *Store {
	cs := sessions.NewCookieStore(authKey)
	cs.Options.Path = "/"
	cs.Options.HttpOnly = true
	cs.Options.SameSite = http.SameSiteStrictMode
	return &Store{cookies: cs}
}

// Save persists the token and current user together. Both are written in
// one operation so the two halves cannot drift apart on a successful
// login.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, token string, user *entity.User) error {
	sess, _ := s.cookies.Get(r, sessionName)
	sess.Values[keyToken] = token
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		sess.Values[keyUser] = string(raw)
	} else {
		delete(sess.Values, keyUser)
	}
	return sess.Save(r, w)
}

// Clear drops the token and current user together.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, sessionName)
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	return sess.Save(r, w)
}

// FromRequest returns the session state carried by the request. A cookie
// that fails to decode is treated as no session at all.
func (s *Store) FromRequest(r *http.Request) Session {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return Session{}
	}
	out := Session{}
	if token, ok := sess.Values[keyToken].(string); ok {
		out.Token = token
	}
	if raw, ok := sess.Values[keyUser].(string); ok && raw != "" {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil && user.Username != "" {
			out.CurrentUser = &user
		}
	}
	return out
}

// Session is a snapshot of the authentication state for one request.
type Session struct {
	Token       string
	CurrentUser *entity.User
}

// Authenticated reports whether the session counts as logged in for UI
// gating. The check is deliberately strict: token and user must both be
// present, and a token that parses as a JWT with an exp claim must not be
// expired. Real authorization stays with the backend; this only decides
// what the UI shows.
func (s Session) Authenticated() bool {
	if s.Token == "" || s.CurrentUser == nil {
		return false
	}
	return !tokenExpired(s.Token, time.Now())
}

// tokenExpired checks the exp claim without verifying the signature; the
// client has no signing key. Opaque tokens and tokens without exp pass,
// falling back to the presence rule.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if _, ok := claims["exp"]; !ok {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), true)
}
