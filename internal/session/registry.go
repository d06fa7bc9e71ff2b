package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry keeps started sessions by ID so that later requests rate cards
// against the baselines captured at start. Sessions dated more than a day
// before the newest one added are dropped.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[uuid.UUID]*Session{}}
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldest := s.Date.AddDays(-1)
	for id, old := range r.sessions {
		if old.Date.Before(oldest) {
			delete(r.sessions, id)
		}
	}
	r.sessions[s.ID] = s
}

// Get returns the session with the given ID. A session started by another
// user is reported as missing.
func (r *Registry) Get(id uuid.UUID, userID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return nil, false
	}
	return s, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
