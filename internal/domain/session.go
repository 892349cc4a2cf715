package domain

import (
	"crypto/subtle"
	"time"
)

// Session is the per-browser interaction state handed to every handler.
// It starts unauthenticated and only becomes authenticated through
// Authenticate with the right password.
type Session struct {
	ID            string
	Authenticated bool
	CreatedAt     time.Time
}

func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now}
}

// Authenticate compares the submitted password with the shared one and
// marks the session on success. A failed attempt leaves the flag untouched.
func (s *Session) Authenticate(submitted, expected string) bool {
	if expected == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) != 1 {
		return false
	}
	s.Authenticated = true
	return true
}

// Logout returns the session to the unauthenticated state.
func (s *Session) Logout() {
	s.Authenticated = false
}
