package mcp

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/resume"
)

// SessionEntry pairs a live session with the facts its plan was built
// from. Entries are independent; the registry only maps ids to them.
type SessionEntry struct {
	Session   *interview.Session
	Facts     resume.Facts
	CreatedAt time.Time
}

// Registry tracks live interview sessions by id for the duration of the
// process. There is no cross-session state and no persistence: dropping
// an entry abandons the interview, nothing to roll back.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*SessionEntry
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*SessionEntry)}
}

// Add registers a session and returns its generated id.
func (r *Registry) Add(session *interview.Session, facts resume.Facts) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &SessionEntry{
		Session:   session,
		Facts:     facts,
		CreatedAt: time.Now(),
	}
	return id
}

// Get returns the entry for an id.
func (r *Registry) Get(id string) (*SessionEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
