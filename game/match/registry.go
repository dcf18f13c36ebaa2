package match

import (
	"sync"
	"time"

	"matchplay/game/service"
)

type entry struct {
	conn  service.Conn
	since time.Time
}

// Registry is the process-wide table of participants waiting to be
// paired, keyed by display identifier. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	waiting map[string]entry
}

// NewRegistry creates an empty waiting-player registry.
func NewRegistry() *Registry {
	return &Registry{
		waiting: make(map[string]entry),
	}
}

// Register records conn as waiting under name. An existing entry for
// the same name is silently overwritten (last write wins).
func (r *Registry) Register(name string, conn service.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.waiting[name] = entry{conn: conn, since: time.Now()}
}

// Take removes and returns the waiting connection for name, if any.
func (r *Registry) Take(name string) (service.Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.waiting[name]
	if !ok {
		return nil, false
	}
	delete(r.waiting, name)
	return e.conn, true
}

// Cancel removes the entry for name only when the stored connection is
// conn. A mismatch means the entry was already overwritten by a newer
// connection and must be left alone.
func (r *Registry) Cancel(name string, conn service.Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.waiting[name]
	if !ok || e.conn != conn {
		return false
	}
	delete(r.waiting, name)
	return true
}

// Count returns the number of waiting participants.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiting)
}

// CleanupStale removes entries older than maxAge and entries whose
// connection is no longer live, returning how many were dropped.
func (r *Registry) CleanupStale(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for name, e := range r.waiting {
		if e.since.Before(cutoff) || !e.conn.Alive() {
			delete(r.waiting, name)
			removed++
		}
	}

	return removed
}
