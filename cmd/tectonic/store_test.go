package main

import (
	"errors"
	"testing"
	"time"

	"github.com/Henri59700fr/tectonic/internal/tectonic"
)

func newStoredSession(t *testing.T, playerId *int64) *EditorSession {
	t.Helper()
	game, err := tectonic.NewGame(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	return NewEditorSession(game, playerId)
}

func TestStoreGetMissing(t *testing.T) {
	s := NewSessionStore(0)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestStoreSetAndGet(t *testing.T) {
	s := NewSessionStore(0)
	session := newStoredSession(t, nil)
	s.Set(session)

	got, err := s.Get(session.SessionId)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got != session {
		t.Fatal("store must hand back the same session instance")
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewSessionStore(0)

	s.Delete("missing") // must not panic

	session := newStoredSession(t, nil)
	s.Set(session)
	s.Delete(session.SessionId)

	if _, err := s.Get(session.SessionId); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, received %v", err)
	}
}

func TestStoreCountAndKeys(t *testing.T) {
	s := NewSessionStore(0)
	a := newStoredSession(t, nil)
	b := newStoredSession(t, nil)
	s.Set(a)
	s.Set(b)

	if count := s.Count(); count != 2 {
		t.Fatalf("have %d, want 2", count)
	}
	keys := s.Keys()
	if len(keys) != 2 {
		t.Fatalf("have %d keys, want 2", len(keys))
	}
	for _, key := range keys {
		if key != a.SessionId && key != b.SessionId {
			t.Fatalf("unexpected key %q", key)
		}
	}
}

func TestStoreForPlayer(t *testing.T) {
	s := NewSessionStore(0)
	alice, bob := int64(1), int64(2)

	first := newStoredSession(t, &alice)
	second := newStoredSession(t, &alice)
	second.StartedAt = first.StartedAt.Add(time.Minute)
	s.Set(first)
	s.Set(second)
	s.Set(newStoredSession(t, &bob))
	s.Set(newStoredSession(t, nil))

	got := s.ForPlayer(alice)
	if len(got) != 2 {
		t.Fatalf("have %d sessions, want 2", len(got))
	}
	if got[0] != first || got[1] != second {
		t.Fatal("sessions must come back oldest first")
	}
}

func TestStoreEvictIdle(t *testing.T) {
	s := NewSessionStore(time.Minute)

	idle := newStoredSession(t, nil)
	idle.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	active := newStoredSession(t, nil)
	s.Set(idle)
	s.Set(active)

	s.evictIdle()

	if _, err := s.Get(idle.SessionId); !errors.Is(err, ErrNotFound) {
		t.Fatalf("idle session should be gone, received %v", err)
	}
	if _, err := s.Get(active.SessionId); err != nil {
		t.Fatalf("active session should survive: %v", err)
	}
}
