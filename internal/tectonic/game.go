package tectonic

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Game is the undo-capable state of one puzzle grid: occupied cells,
// walls, the two mode flags and the snapshot history. It is not safe
// for concurrent use; callers serialize access.
//
// Invalid mutations never return errors. An edit that the current mode
// or a cell invariant disallows simply does not happen, leaving state
// and history untouched.
type Game struct {
	rows, cols  int
	cells       map[CellID]CellState
	walls       WallSet
	locked      bool
	settingKeys bool
	lastAction  Action
	hist        *history
}

// NewGame returns an unlocked grid in key-setting mode. Its history
// holds the seed snapshot of the empty grid.
func NewGame(rows, cols int) (*Game, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Game{
		rows:        rows,
		cols:        cols,
		cells:       make(map[CellID]CellState),
		walls:       make(WallSet),
		settingKeys: true,
		hist:        newHistory(),
	}, nil
}

// PlaceDigit applies a primary digit to a cell. Placing the digit the
// cell already holds clears the whole entry, candidates included. The
// digit becomes a key when it is placed during key setting on an
// unlocked grid. Key cells are immutable while locked.
func (g *Game) PlaceDigit(cell CellID, digit Digit) {
	if !digit.Valid() {
		return
	}
	state, ok := g.cells[cell]
	if g.locked && state.Key {
		return
	}
	if ok && state.Value == digit {
		delete(g.cells, cell)
		g.lastAction = Action{Kind: ActionClearCell, Cell: cell, Digit: digit}
	} else {
		g.cells[cell] = CellState{
			Value: digit,
			Key:   g.settingKeys && !g.locked,
		}
		g.lastAction = Action{Kind: ActionPlaceDigit, Cell: cell, Digit: digit}
	}
	g.record()
}

// ToggleCandidate flips a candidate digit on a cell, deleting the entry
// when that leaves it empty. Candidates are a solving tool: they cannot
// be placed while keys are being authored on an unlocked grid, and key
// cells never accept them.
func (g *Game) ToggleCandidate(cell CellID, digit Digit) {
	if !digit.Valid() {
		return
	}
	if g.settingKeys && !g.locked {
		return
	}
	state := g.cells[cell]
	if state.Key {
		return
	}
	state.Small = state.Small.Toggle(digit)
	if state.IsEmpty() {
		delete(g.cells, cell)
	} else {
		g.cells[cell] = state
	}
	g.lastAction = Action{Kind: ActionToggleCandidate, Cell: cell, Digit: digit}
	g.record()
}

// ToggleWall flips a wall's membership. Walls are frozen while locked.
func (g *Game) ToggleWall(wall WallID) {
	if g.locked {
		return
	}
	g.walls.Toggle(wall)
	g.lastAction = Action{Kind: ActionToggleWall, Wall: wall}
	g.record()
}

// Reset removes every non-key cell and leaves key cells untouched. It
// only applies while locked; the caller must have confirmed the action
// with the user beforehand.
func (g *Game) Reset() {
	if !g.locked {
		return
	}
	for id, cell := range g.cells {
		if !cell.Key {
			delete(g.cells, id)
		}
	}
	g.lastAction = Action{Kind: ActionReset}
	g.record()
}

// Stop clears all cells and walls and returns the grid to unlocked
// key-setting mode. The lock is released before recording, so the
// cleared state lands in history. As with Reset, confirmation is the
// caller's responsibility.
func (g *Game) Stop() {
	g.cells = make(map[CellID]CellState)
	g.walls = make(WallSet)
	g.locked = false
	g.settingKeys = true
	g.lastAction = Action{Kind: ActionStop}
	g.record()
}

// SetLocked moves the grid in or out of solving mode. Any lock change,
// in either direction, leaves key-setting mode. Mode flags sit outside
// snapshots, so the transition is not a history entry and undo never
// reverts it.
func (g *Game) SetLocked(locked bool) {
	g.locked = locked
	g.settingKeys = false
	Log.WithFields(logrus.Fields{
		"locked": g.locked,
	}).Debug("lock changed")
}

func (g *Game) ToggleLock() {
	g.SetLocked(!g.locked)
}

// Resize changes the grid dimensions. Dimensions are configuration, not
// a grid mutation: resizing only applies while unlocked and is never
// recorded. Entries outside the new bounds are retained, so growing the
// grid back reveals them again.
func (g *Game) Resize(rows, cols int) {
	if g.locked || rows < 1 || cols < 1 {
		return
	}
	g.rows, g.cols = rows, cols
}

// Click dispatches the active selection to the matching mutation. A
// click with nothing selected does nothing.
func (g *Game) Click(sel Selection, cell CellID) {
	switch sel.Kind {
	case SelectPrimary:
		g.PlaceDigit(cell, sel.Digit)
	case SelectCandidate:
		g.ToggleCandidate(cell, sel.Digit)
	}
}

// Undo steps back to the previous snapshot, restoring cells, walls and
// the last-action descriptor from an independent copy. Mode flags are
// not versioned and survive the restore. At the seed snapshot this does
// nothing.
func (g *Game) Undo() {
	snap, ok := g.hist.undo()
	if !ok {
		return
	}
	g.cells = snap.Cells
	g.walls = snap.Walls
	g.lastAction = snap.LastAction
	Log.WithFields(logrus.Fields{
		"cursor": g.hist.cursor,
	}).Debug("restored snapshot")
}

// record snapshots the current state. While the grid is locked no
// snapshots are taken, so solving-mode edits stay outside the undo
// trail.
func (g *Game) record() {
	if g.locked {
		return
	}
	g.hist.push(Snapshot{
		Cells:      g.cells,
		Walls:      g.walls,
		LastAction: g.lastAction,
	})
	Log.WithFields(logrus.Fields{
		"action": g.lastAction.Kind,
		"size":   g.hist.size(),
		"cursor": g.hist.cursor,
	}).Debug("recorded snapshot")
}

func (g *Game) Rows() int { return g.rows }

func (g *Game) Cols() int { return g.cols }

func (g *Game) Locked() bool { return g.locked }

func (g *Game) SettingKeys() bool { return g.settingKeys }

func (g *Game) LastAction() Action { return g.lastAction }

func (g *Game) CanUndo() bool { return g.hist.canUndo() }

func (g *Game) CanEditWalls() bool { return !g.locked }

func (g *Game) CanReset() bool { return g.locked }

func (g *Game) CanResize() bool { return !g.locked }

// CanClick reports whether clicking cell with the given selection would
// apply a mutation, so the input layer can disable controls instead of
// relying on silent rejection.
func (g *Game) CanClick(sel Selection, cell CellID) bool {
	if !g.ValidCell(cell) || !sel.Digit.Valid() {
		return false
	}
	switch sel.Kind {
	case SelectPrimary:
		return !(g.locked && g.cells[cell].Key)
	case SelectCandidate:
		return !(g.settingKeys && !g.locked) && !g.cells[cell].Key
	}
	return false
}

// Cells returns a copy of the occupied cells.
func (g *Game) Cells() map[CellID]CellState {
	return cloneCells(g.cells)
}

// Walls returns a copy of the wall set.
func (g *Game) Walls() WallSet {
	return g.walls.Clone()
}

// Cell returns the state of one cell; ok is false for empty cells.
func (g *Game) Cell(id CellID) (CellState, bool) {
	state, ok := g.cells[id]
	return state, ok
}

func (g *Game) ValidCell(c CellID) bool {
	return 0 <= c.Row && c.Row < g.rows && 0 <= c.Col && c.Col < g.cols
}

func (g *Game) ValidWall(w WallID) bool {
	return g.ValidCell(w.Cell())
}

func (g *Game) HistoryLen() int { return g.hist.size() }

func (g *Game) HistoryIndex() int { return g.hist.cursor }
