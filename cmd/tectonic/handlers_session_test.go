package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Henri59700fr/tectonic/internal/tectonic"
)

func postBatch(t *testing.T, session *EditorSession, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(
		http.MethodPost,
		"/v1/session/"+session.SessionId+"/batch",
		strings.NewReader(body),
	)
	r.SetPathValue("id", session.SessionId)
	w := httptest.NewRecorder()
	handleBatch(w, r)
	return w
}

func TestHandleBatchAppliesCommandsInOrder(t *testing.T) {
	sessions = NewSessionStore(0)
	session := newStoredSession(t, nil)
	sessions.Set(session)

	w := postBatch(t, session, "m 0 0 3\nw 1 2 h\nl")

	require.Equal(t, http.StatusOK, w.Code)

	state, ok := session.Game.Cell(tectonic.CellID{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, tectonic.CellState{Value: 3, Key: true}, state)
	wall, err := tectonic.ParseWallID("1-2-h")
	require.NoError(t, err)
	assert.True(t, session.Game.Walls().Has(wall))
	assert.True(t, session.Game.Locked())
}

func TestHandleBatchReportsOneBasedLine(t *testing.T) {
	sessions = NewSessionStore(0)
	session := newStoredSession(t, nil)
	sessions.Set(session)

	w := postBatch(t, session, "m 0 0 3\nbogus\nw 1 2 h")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var batchErr BatchError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &batchErr))
	assert.Equal(t, 2, batchErr.Line, "the first command is line 1")
	assert.NotEmpty(t, batchErr.Message)

	// Commands before the malformed line stay applied, those after
	// never run.
	_, ok := session.Game.Cell(tectonic.CellID{Row: 0, Col: 0})
	assert.True(t, ok)
	assert.Empty(t, session.Game.Walls())
}

func TestHandleBatchFailsOnFirstLine(t *testing.T) {
	sessions = NewSessionStore(0)
	session := newStoredSession(t, nil)
	sessions.Set(session)

	w := postBatch(t, session, "z")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var batchErr BatchError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &batchErr))
	assert.Equal(t, 1, batchErr.Line)
}

func TestHandleBatchUnknownSession(t *testing.T) {
	sessions = NewSessionStore(0)

	r := httptest.NewRequest(http.MethodPost, "/v1/session/missing/batch", strings.NewReader("g"))
	r.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handleBatch(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
