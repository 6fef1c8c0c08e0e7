package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/folio/internal/view"
)

// Session is the per-browser UI state: the gate plus the view router.
// Nothing here is persisted; a restart resets every visitor to public/hero.
type Session struct {
	ID string

	mu   sync.Mutex
	gate Gate
	view view.State

	lastSeen atomic.Int64 // unix nanoseconds
}

// LastSeen is the last time the session was created or looked up.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

// Snapshot is a consistent read of a session.
type Snapshot struct {
	Authenticated bool
	Error         string
	View          view.State
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Authenticated: s.gate.Authenticated(),
		Error:         s.gate.Error(),
		View:          s.view,
	}
}

func (s *Session) Login(creds Credentials, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Login(creds, username, password)
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate.Logout()
}

// Authenticated reports the gate state.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Authenticated()
}

// Enter switches the view mode.
func (s *Session) Enter(mode view.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Enter(mode)
}

// Select switches the active admin section.
func (s *Session) Select(section view.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Select(section)
}

// Registry holds live sessions in memory, keyed by cookie id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session for id, if any, and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

// Create starts a new public/hero, unauthenticated session.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:   uuid.NewString(),
		view: view.Initial(),
	}
	s.touch(time.Now())
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions not seen for longer than idle and returns how many
// were removed. A dropped visitor simply gets a fresh public/hero session.
func (r *Registry) Sweep(now time.Time, idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
