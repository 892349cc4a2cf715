package api

import (
	"collection-dashboard/internal/domain"
	"net/http"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// SessionCookieName holds the opaque session id.
const SessionCookieName = "rge_session"

// SessionStore keeps authenticated sessions in memory. Anonymous visitors
// get a throwaway session that is only stored once it authenticates.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]domain.Session{}, now: time.Now}
}

// Resolve returns a copy of the session named by the request cookie, or a
// new unauthenticated one.
func (s *SessionStore) Resolve(r *http.Request) *domain.Session {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		s.mu.Lock()
		sess, ok := s.sessions[c.Value]
		s.mu.Unlock()
		if ok {
			return &sess
		}
	}
	return domain.NewSession("", s.now())
}

// Issue stores sess under a fresh id and sends the cookie. Any previous id
// of the session stops being valid.
func (s *SessionStore) Issue(w http.ResponseWriter, sess *domain.Session) {
	id := uuid.NewV4().String()

	s.mu.Lock()
	if sess.ID != "" {
		delete(s.sessions, sess.ID)
	}
	sess.ID = id
	s.sessions[id] = *sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Revoke forgets sess and expires the cookie.
func (s *SessionStore) Revoke(w http.ResponseWriter, sess *domain.Session) {
	if sess.ID != "" {
		s.mu.Lock()
		delete(s.sessions, sess.ID)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
