package loop

import (
	"sync"
	"time"
)

// EventType identifies a session event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the server to a running session.
type Event struct {
	Type EventType
}

// Session is the registry's handle for one connected player.
type Session struct {
	ID     int
	User   string
	Events chan Event // Buffered; read by Run through Options.Events
}

// Registry tracks running sessions so the server can notify them and wait
// for them to leave. Each session plays its own independent game.
type Registry struct {
	mu       sync.RWMutex
	nextID   int
	sessions map[int]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int]*Session)}
}

// Register adds a session for user and returns its handle.
func (r *Registry) Register(user string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s := &Session{
		ID:     r.nextID,
		User:   user,
		Events: make(chan Event, 4),
	}
	r.sessions[s.ID] = s
	return s
}

// Unregister removes a session. Unknown ids are ignored.
func (r *Registry) Unregister(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Shutdown notifies every session that the server is going away and waits
// for them to unregister, up to timeout.
func (r *Registry) Shutdown(timeout time.Duration) {
	// Notify all connected sessions about the shutdown
	r.mu.RLock()
	for _, s := range r.sessions {
		select {
		case s.Events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	r.mu.RUnlock()

	// Wait for all sessions to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if r.Len() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
