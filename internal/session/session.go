// Package session keeps the per-operator page context (selected config,
// cached editor content, last runner output, refresh interval) keyed by a
// cookie-borne session id. State lives in memory only.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"llmtools/pkg/types"
)

// CookieName carries the session id.
const CookieName = "llmtools_session"

// Data is the page context of one session.
type Data struct {
	SelectedConfig string
	EditorContent  string
	LastRun        *types.RunResponse
	LastRunError   string
	// RefreshSeconds is only meaningful when RefreshSet is true.
	RefreshSeconds int
	RefreshSet     bool
	TokenModel     string
	HubQuery       types.HubSearchRequest
	HubResults     []types.HubRepo
}

// Session is one entry of the Store.
type Session struct {
	ID string

	mu       sync.Mutex
	data     Data
	lastUsed time.Time
}

// Get returns a copy of the session data.
func (s *Session) Get() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data
	d.HubResults = append([]types.HubRepo(nil), s.data.HubResults...)
	return d
}

// Update mutates the session data under its lock.
func (s *Session) Update(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Store maps session ids to sessions and drops the ones idle for longer
// than the configured duration.
type Store struct {
	mu    sync.Mutex
	items map[string]*Session
	idle  time.Duration
	now   func() time.Time
}

// NewStore creates a store; idle <= 0 keeps sessions forever.
func NewStore(idle time.Duration) *Store {
	return &Store{items: make(map[string]*Session), idle: idle, now: time.Now}
}

// New allocates a session with a fresh id.
func (s *Store) New() *Session {
	sess := &Session{ID: uuid.NewString(), lastUsed: s.now()}
	s.mu.Lock()
	s.items[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get looks up a session and marks it used.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		delete(s.items, id)
		return nil, false
	}
	sess.lastUsed = s.now()
	return sess, true
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) expired(sess *Session) bool {
	return s.idle > 0 && s.now().Sub(sess.lastUsed) > s.idle
}

// Sweep removes idle sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.items {
		if s.expired(sess) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

type ctxKey struct{}

// Middleware attaches the caller's session to the request context,
// issuing a new cookie when the id is missing, unknown or expired.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *Session
		if c, err := r.Cookie(CookieName); err == nil {
			sess, _ = s.Get(c.Value)
		}
		if sess == nil {
			sess = s.New()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// WithSession returns ctx carrying sess.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the request's session. Without the middleware a
// detached session is returned so handlers never see nil.
func FromContext(ctx context.Context) *Session {
	if sess, ok := ctx.Value(ctxKey{}).(*Session); ok && sess != nil {
		return sess
	}
	return &Session{}
}
