package session

import (
	"sync"
	"time"

	"matchplay/game/service"
)

// Registry handles game session storage and lifecycle. Safe for
// concurrent use; the service layer serializes game-state mutation on
// top of it.
type Registry struct {
	sessions map[string]*service.Session
	mu       sync.RWMutex
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*service.Session),
	}
}

// Put stores sess under its room key. An existing session for the same
// key is replaced; two identifiers always map to one room, so a rematch
// between the same pair simply supersedes the stale session.
func (r *Registry) Put(sess *service.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	sess.CreatedAt = now
	sess.LastActiveAt = now
	r.sessions[sess.RoomKey] = sess
}

// Get retrieves a session by room key.
func (r *Registry) Get(roomKey string) (*service.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[roomKey]
	return sess, ok
}

// Delete removes a session. Removing an absent key is a no-op.
func (r *Registry) Delete(roomKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, roomKey)
}

// FindByConn returns the first session with conn as a participant. The
// scan stops at the first match; a connection belongs to at most one
// session by construction.
func (r *Registry) FindByConn(conn service.Conn) (*service.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sess := range r.sessions {
		for _, p := range sess.Players {
			if p.Conn == conn {
				return sess, true
			}
		}
	}
	return nil, false
}

// Touch refreshes the last-activity timestamp for roomKey, if present.
func (r *Registry) Touch(roomKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[roomKey]; ok {
		sess.LastActiveAt = time.Now()
	}
}

// List returns all active sessions.
func (r *Registry) List() []*service.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*service.Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		result = append(result, sess)
	}
	return result
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CleanupIdle removes sessions with no activity within maxAge and
// returns how many were removed. Abandoned rooms otherwise live
// forever, since only a disconnect tears a session down.
func (r *Registry) CleanupIdle(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for key, sess := range r.sessions {
		if sess.LastActiveAt.Before(cutoff) {
			delete(r.sessions, key)
			removed++
		}
	}

	return removed
}
