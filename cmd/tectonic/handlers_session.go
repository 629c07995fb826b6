package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/schema"

	"github.com/Henri59700fr/tectonic/internal/tectonic"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type GridParams struct {
	Rows int `schema:"rows,required"`
	Cols int `schema:"cols,required"`
}

type CellParams struct {
	Row   int    `schema:"row,required"`
	Col   int    `schema:"col,required"`
	Kind  string `schema:"kind,required"`
	Digit int    `schema:"digit,required"`
}

type WallParams struct {
	Row         int    `schema:"row,required"`
	Col         int    `schema:"col,required"`
	Orientation string `schema:"o,required"`
}

type ConfirmParams struct {
	Confirm bool `schema:"confirm,required"`
}

func playerClaims(r *http.Request) *PlayerClaims {
	claims, _ := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	return claims
}

func fetchSession(w http.ResponseWriter, r *http.Request) (*EditorSession, bool) {
	session, err := sessions.Get(r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return nil, false
	}
	if !session.OwnedBy(playerClaims(r)) {
		w.WriteHeader(http.StatusForbidden)
		return nil, false
	}
	return session, true
}

func handleNewSession(w http.ResponseWriter, r *http.Request) {
	var params GridParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	game, err := tectonic.NewGame(params.Rows, params.Cols)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var playerId *int64
	if claims := playerClaims(r); claims != nil {
		log.Debug("creating session for player ", claims.Username)
		playerId = &claims.PlayerId
		refreshPlayerCookies(w, *claims)
	} else {
		log.Debug("creating anonymous session")
	}
	session := NewEditorSession(game, playerId)
	sessions.Set(session)
	session.Lock()
	defer session.Unlock()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleGetSessions(w http.ResponseWriter, r *http.Request) {
	claims := playerClaims(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	refreshPlayerCookies(w, *claims)
	list := sessions.ForPlayer(claims.PlayerId)
	payload := make([]json.RawMessage, 0, len(list))
	for _, session := range list {
		session.Lock()
		b, err := json.Marshal(session)
		session.Unlock()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error(err)
			return
		}
		payload = append(payload, b)
	}
	if _, err := sendJSON(w, payload); err != nil {
		log.Error(err)
	}
}

func handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	sessions.Delete(session.SessionId)
	w.WriteHeader(http.StatusNoContent)
}

func handleClickCell(w http.ResponseWriter, r *http.Request) {
	var params CellParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	digit := tectonic.Digit(params.Digit)
	if !digit.Valid() {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var sel tectonic.Selection
	switch params.Kind {
	case "main":
		sel = tectonic.PrimarySelection(digit)
	case "small":
		sel = tectonic.CandidateSelection(digit)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	cell := tectonic.CellID{Row: params.Row, Col: params.Col}
	if !session.Game.ValidCell(cell) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session.Game.Click(sel, cell)
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleToggleWall(w http.ResponseWriter, r *http.Request) {
	var params WallParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	o, err := tectonic.ParseOrientation(params.Orientation)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	wall := tectonic.WallID{Row: params.Row, Col: params.Col, Orientation: o}
	if !session.Game.ValidWall(wall) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session.Game.ToggleWall(wall)
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleToggleLock(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	session.Game.ToggleLock()
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleUndo(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	session.Game.Undo()
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleResize(w http.ResponseWriter, r *http.Request) {
	var params GridParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if params.Rows < 1 || params.Cols < 1 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	session.Game.Resize(params.Rows, params.Cols)
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

// Destructive actions carry the user's answer to the confirmation
// prompt. A declined confirmation touches nothing: no state change and
// no history entry, just the current state echoed back.
func handleReset(w http.ResponseWriter, r *http.Request) {
	var params ConfirmParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	if params.Confirm {
		session.Game.Reset()
		session.Touch()
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleStop(w http.ResponseWriter, r *http.Request) {
	var params ConfirmParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()
	if params.Confirm {
		session.Game.Stop()
		session.Touch()
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

type BatchError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Accepts newline-separated commands in the body, using the same syntax
// as the websocket surface (see [executeCommand]). Commands apply in
// order. A malformed command aborts the batch with a 400 naming its
// one-based line; commands before it stay applied, each one atomic on
// its own.
func handleBatch(w http.ResponseWriter, r *http.Request) {
	session, ok := fetchSession(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	session.Lock()
	defer session.Unlock()
	for i, c := range byPiece(lines, "\n") {
		if err := executeCommand(session.Game, c); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			if _, err := sendJSON(w, BatchError{i + 1, err.Error()}); err != nil {
				log.Error(err)
			}
			return
		}
	}
	session.Touch()
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}
