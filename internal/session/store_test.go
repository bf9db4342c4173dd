package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"coursehub/internal/entity"
)

func newTestStore() *Store {
	return NewStore([]byte("0123456789abcdef0123456789abcdef"))
}

// roundTrip saves state through the store and returns a request carrying
// the resulting cookies, the way the next page load would.
func roundTrip(t *testing.T, store *Store, token string, user *entity.User) *http.Request {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := store.Save(w, r, token, user); err != nil {
		t.Fatalf("save session: %v", err)
	}
	next := httptest.NewRequest(http.MethodGet, "/all-courses", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestSaveThenAuthenticated(t *testing.T) {
	store := newTestStore()
	user := &entity.User{Username: "dana", Email: "dana@example.com", Code: "USR-17"}

	r := roundTrip(t, store, "opaque-token", user)
	sess := store.FromRequest(r)

	if !sess.Authenticated() {
		t.Fatal("expected an authenticated session after save")
	}
	if sess.CurrentUser == nil || sess.CurrentUser.Username != "dana" {
		t.Fatalf("current user not carried through: %+v", sess.CurrentUser)
	}
	if sess.Token != "opaque-token" {
		t.Fatalf("token not carried through: %q", sess.Token)
	}
}

func TestClearDropsBothHalves(t *testing.T) {
	store := newTestStore()
	r := roundTrip(t, store, "opaque-token", &entity.User{Username: "dana"})

	w := httptest.NewRecorder()
	if err := store.Clear(w, r); err != nil {
		t.Fatalf("clear: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/all-courses", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	sess := store.FromRequest(next)
	if sess.Authenticated() {
		t.Fatal("session still authenticated after clear")
	}
	if sess.Token != "" || sess.CurrentUser != nil {
		t.Fatalf("state survived clear: %+v", sess)
	}
}

func TestInconsistentHalvesAreNotAuthenticated(t *testing.T) {
	store := newTestStore()

	tokenOnly := store.FromRequest(roundTrip(t, store, "opaque-token", nil))
	if tokenOnly.Authenticated() {
		t.Fatal("token without a user must not count as authenticated")
	}

	userOnly := store.FromRequest(roundTrip(t, store, "", &entity.User{Username: "dana"}))
	if userOnly.Authenticated() {
		t.Fatal("user without a token must not count as authenticated")
	}
}

func TestExpiredJWTIsNotAuthenticated(t *testing.T) {
	store := newTestStore()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dana",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	sess := store.FromRequest(roundTrip(t, store, expired, &entity.User{Username: "dana"}))
	if sess.Authenticated() {
		t.Fatal("expired token must not count as authenticated")
	}
}

func TestLiveJWTIsAuthenticated(t *testing.T) {
	store := newTestStore()

	live, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dana",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	sess := store.FromRequest(roundTrip(t, store, live, &entity.User{Username: "dana"}))
	if !sess.Authenticated() {
		t.Fatal("live token with a user should be authenticated")
	}
}

func TestUndecodableCookieMeansNoSession(t *testing.T) {
	store := newTestStore()
	r := httptest.NewRequest(http.MethodGet, "/all-courses", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "garbage"})

	sess := store.FromRequest(r)
	if sess.Authenticated() || sess.Token != "" || sess.CurrentUser != nil {
		t.Fatalf("garbage cookie produced state: %+v", sess)
	}
}
