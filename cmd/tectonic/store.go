package main

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// SessionStore keeps live editor sessions in memory. Grid state is
// never persisted: when the process exits or a session idles out, the
// grid is gone. Only player credentials live in postgres.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*EditorSession
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*EditorSession),
		ttl:      ttl,
	}
}

// Get retrieves a session by id. If the id is not present,
// [ErrNotFound] is returned.
func (s *SessionStore) Get(sessionId string) (*EditorSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionId]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Set inserts a new session or replaces an existing one.
func (s *SessionStore) Set(session *EditorSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionId] = session
}

// Delete removes a session without checking if it existed.
func (s *SessionStore) Delete(sessionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionId)
}

func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

// ForPlayer lists the player's sessions, oldest first.
func (s *SessionStore) ForPlayer(playerId int64) []*EditorSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []*EditorSession
	for _, session := range s.sessions {
		if session.PlayerId != nil && *session.PlayerId == playerId {
			found = append(found, session)
		}
	}
	slices.SortFunc(found, func(a, b *EditorSession) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
	return found
}

// Sweep evicts idle sessions until ctx is done. A zero ttl disables
// eviction entirely.
func (s *SessionStore) Sweep(ctx context.Context) {
	if s.ttl <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *SessionStore) evictIdle() {
	cutoff := time.Now().UTC().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.LastActive().Before(cutoff) {
			delete(s.sessions, id)
			log.Debug("evicted idle session ", id)
		}
	}
	log.Debug("live sessions: ", len(s.sessions))
}
