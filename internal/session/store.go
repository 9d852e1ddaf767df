// Package session owns the authenticated identity of the CLI user.
//
// The store is the single writer of session state: login, signup, logout and
// restore are the only transitions, and each one is serialized by the store's
// own mutex. Every other component reads the session through Current/Token
// or observes changes through Subscribe.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"thesisledger/internal/logging"
	"thesisledger/internal/models"
)

const sessionKey = "session"

// AuthAPI is the slice of the backend client the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Signup(ctx context.Context, name, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
}

// Listener observes session transitions. active is false after logout or a
// failed restore.
type Listener func(s models.Session, active bool)

// Store holds the current session and persists it to the local database.
type Store struct {
	repo Repository
	api  AuthAPI
	log  logging.Logger

	mu        sync.Mutex
	current   *models.Session
	listeners []Listener
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Bind attaches the backend client. Separate from NewStore because the
// client reads its bearer token from the store, so the two are constructed
// in sequence.
func (s *Store) Bind(api AuthAPI) {
	s.api = api
}

// Subscribe registers a listener for session transitions. Listeners are
// invoked synchronously, after the transition is durable.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Current returns the active session, if any.
func (s *Store) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Token returns the current bearer token, or "" for anonymous callers.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Login authenticates, persists the resulting session, and notifies
// subscribers.
func (s *Store) Login(ctx context.Context, email, password string) (models.Session, error) {
	sess, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	return s.activate(ctx, sess, email)
}

// Signup creates an account and activates the returned session.
func (s *Store) Signup(ctx context.Context, name, email, password string) (models.Session, error) {
	sess, err := s.api.Signup(ctx, name, email, password)
	if err != nil {
		return models.Session{}, err
	}
	if sess.Name == "" {
		sess.Name = name
	}
	return s.activate(ctx, sess, email)
}

func (s *Store) activate(ctx context.Context, sess models.Session, email string) (models.Session, error) {
	fillFromClaims(&sess)
	if sess.Email == "" {
		sess.Email = email
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, err
	}
	if err := s.repo.Set(ctx, sessionKey, b); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.current = &sess
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(sess, true)
	}
	return sess, nil
}

// Logout tells the backend (best effort), clears local state, and notifies
// subscribers. A failed server call never keeps the user logged in locally.
func (s *Store) Logout(ctx context.Context) error {
	if s.api != nil {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server logout failed", "err", err)
		}
	}
	if err := s.repo.Delete(ctx, sessionKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(models.Session{}, false)
	}
	return nil
}

// Restore loads the persisted session at startup. A malformed or expired
// stored value clears storage and reports no session.
func (s *Store) Restore(ctx context.Context) (models.Session, bool) {
	b, err := s.repo.Get(ctx, sessionKey)
	if err != nil || len(b) == 0 {
		return models.Session{}, false
	}

	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil || sess.Token == "" {
		s.log.Warn(ctx, "discarding malformed stored session")
		_ = s.repo.Delete(ctx, sessionKey)
		return models.Session{}, false
	}
	if expired(sess.Token) {
		s.log.Info(ctx, "stored session expired")
		_ = s.repo.Delete(ctx, sessionKey)
		return models.Session{}, false
	}

	s.mu.Lock()
	s.current = &sess
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(sess, true)
	}
	return sess, true
}

// fillFromClaims backfills display fields from the token claims when the
// auth response omitted them. The token is NOT verified here: the client
// holds no signing key, and the claims are used for display only. The server
// verifies the token on every request.
func fillFromClaims(sess *models.Session) {
	if sess.Token == "" || (sess.Email != "" && sess.Name != "" && sess.Role != "") {
		return
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims); err != nil {
		return
	}
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	if sess.Email == "" {
		sess.Email = str("email")
		if sess.Email == "" {
			sess.Email = str("sub")
		}
	}
	if sess.Name == "" {
		sess.Name = str("name")
	}
	if sess.Role == "" {
		sess.Role = str("role")
	}
}

// expired reports whether the token carries an exp claim in the past.
// Tokens without parseable claims are assumed live; the server is the
// authority either way.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
