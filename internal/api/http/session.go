package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

const sessionCookieName = "portfoliogen_session"

// Sessions keeps per browser session template selection in memory.
// The least recently used sessions are evicted when size is exceeded.
type Sessions struct {
	templates *lru.Cache
}

// NewSessions creates new Sessions instance.
func NewSessions(size int) (*Sessions, error) {
	if size <= 0 {
		return nil, errors.New("sessions size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for sessions: %w", err)
	}

	return &Sessions{templates: cache}, nil
}

// Template returns template selected in request's session, empty string if none.
func (s *Sessions) Template(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	v, ok := s.templates.Get(c.Value)
	if !ok {
		return ""
	}

	return v.(string)
}

// SetTemplate stores template selection in request's session.
// New session is started if request has none.
func (s *Sessions) SetTemplate(w http.ResponseWriter, r *http.Request, name string) {
	id := ""
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	s.templates.Add(id, name)
}
