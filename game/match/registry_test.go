package match

import (
	"testing"
	"time"
)

type testConn struct {
	id    string
	name  string
	alive bool
}

func (c *testConn) ID() string   { return c.id }
func (c *testConn) Name() string { return c.name }
func (c *testConn) Alive() bool  { return c.alive }

func TestRegistry_RegisterAndTake(t *testing.T) {
	reg := NewRegistry()
	conn := &testConn{id: "c1", name: "alice", alive: true}

	reg.Register("alice", conn)

	if reg.Count() != 1 {
		t.Fatalf("Count = %d, want 1", reg.Count())
	}

	got, ok := reg.Take("alice")
	if !ok {
		t.Fatal("Take should find the registered entry")
	}
	if got != conn {
		t.Error("Take returned a different connection")
	}
	if reg.Count() != 0 {
		t.Error("Take must remove the entry")
	}

	if _, ok := reg.Take("alice"); ok {
		t.Error("second Take should find nothing")
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	reg := NewRegistry()
	first := &testConn{id: "c1", name: "alice", alive: true}
	second := &testConn{id: "c2", name: "alice", alive: true}

	reg.Register("alice", first)
	reg.Register("alice", second)

	if reg.Count() != 1 {
		t.Fatalf("Count = %d after overwrite, want 1", reg.Count())
	}

	got, _ := reg.Take("alice")
	if got != second {
		t.Error("overwrite must keep the newest connection")
	}
}

func TestRegistry_Cancel(t *testing.T) {
	reg := NewRegistry()
	conn := &testConn{id: "c1", name: "alice", alive: true}
	other := &testConn{id: "c2", name: "alice", alive: true}

	reg.Register("alice", conn)

	t.Run("mismatched connection is left alone", func(t *testing.T) {
		if reg.Cancel("alice", other) {
			t.Error("Cancel must not remove an entry owned by another connection")
		}
		if reg.Count() != 1 {
			t.Error("entry should still be present")
		}
	})

	t.Run("matching connection removes entry", func(t *testing.T) {
		if !reg.Cancel("alice", conn) {
			t.Error("Cancel should remove the matching entry")
		}
		if reg.Count() != 0 {
			t.Error("entry should be gone")
		}
	})

	t.Run("cancel on empty registry", func(t *testing.T) {
		if reg.Cancel("alice", conn) {
			t.Error("Cancel on missing entry should report false")
		}
	})
}

func TestRegistry_CleanupStale(t *testing.T) {
	reg := NewRegistry()
	live := &testConn{id: "c1", name: "alice", alive: true}
	dead := &testConn{id: "c2", name: "bob", alive: false}

	reg.Register("alice", live)
	reg.Register("bob", dead)

	removed := reg.CleanupStale(time.Minute)
	if removed != 1 {
		t.Errorf("removed = %d, want 1 (dead connection)", removed)
	}
	if _, ok := reg.Take("bob"); ok {
		t.Error("dead connection should have been swept")
	}
	if _, ok := reg.Take("alice"); !ok {
		t.Error("live connection should have survived the sweep")
	}

	// Age-based expiry: a zero maxAge makes every entry stale.
	reg.Register("alice", live)
	if removed := reg.CleanupStale(0); removed != 1 {
		t.Errorf("removed = %d with zero maxAge, want 1", removed)
	}
}
