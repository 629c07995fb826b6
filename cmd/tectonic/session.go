package main

import (
	"encoding/base64"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Henri59700fr/tectonic/internal/tectonic"
)

// EditorSession ties one grid to one editing surface. Commands arriving
// over HTTP and websocket both take the session lock for the whole
// mutate-and-render span, so edits apply atomically in arrival order.
type EditorSession struct {
	mu        sync.Mutex
	SessionId string
	PlayerId  *int64
	Game      *tectonic.Game
	StartedAt time.Time
	UpdatedAt time.Time
}

func NewEditorSession(game *tectonic.Game, playerId *int64) *EditorSession {
	u := [16]byte(uuid.New())
	sessionId := base64.RawURLEncoding.EncodeToString(u[:])
	now := time.Now().UTC()
	return &EditorSession{
		SessionId: sessionId,
		PlayerId:  playerId,
		Game:      game,
		StartedAt: now,
		UpdatedAt: now,
	}
}

func (s *EditorSession) Lock() { s.mu.Lock() }

func (s *EditorSession) Unlock() { s.mu.Unlock() }

// Touch marks activity. Callers hold the session lock.
func (s *EditorSession) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// LastActive takes the session lock itself; the sweeper calls it
// without holding one.
func (s *EditorSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UpdatedAt
}

// Owned sessions only answer to their creator; anonymous sessions are
// open to whoever holds the session id.
func (s *EditorSession) OwnedBy(claims *PlayerClaims) bool {
	if s.PlayerId == nil {
		return true
	}
	return claims != nil && *s.PlayerId == claims.PlayerId
}

type EditorSessionJSON struct {
	SessionId   string                                 `json:"session_id"`
	Rows        int                                    `json:"rows"`
	Cols        int                                    `json:"cols"`
	Cells       map[tectonic.CellID]tectonic.CellState `json:"cells"`
	Walls       tectonic.WallSet                       `json:"walls"`
	Locked      bool                                   `json:"locked"`
	SettingKeys bool                                   `json:"setting_keys"`
	CanUndo     bool                                   `json:"can_undo"`
	LastAction  *tectonic.Action                       `json:"last_action,omitempty"`
	StartedAt   int64                                  `json:"started_at"`
	UpdatedAt   int64                                  `json:"updated_at"`
}

// [EditorSession] implements [json.Marshaler]. Callers hold the session
// lock while marshalling.
func (s *EditorSession) MarshalJSON() ([]byte, error) {
	var lastAction *tectonic.Action
	if a := s.Game.LastAction(); !a.None() {
		lastAction = &a
	}
	return json.Marshal(EditorSessionJSON{
		SessionId:   s.SessionId,
		Rows:        s.Game.Rows(),
		Cols:        s.Game.Cols(),
		Cells:       s.Game.Cells(),
		Walls:       s.Game.Walls(),
		Locked:      s.Game.Locked(),
		SettingKeys: s.Game.SettingKeys(),
		CanUndo:     s.Game.CanUndo(),
		LastAction:  lastAction,
		StartedAt:   s.StartedAt.UnixMilli(),
		UpdatedAt:   s.UpdatedAt.UnixMilli(),
	})
}
