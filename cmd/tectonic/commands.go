package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Henri59700fr/tectonic/internal/tectonic"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"m": 3,
	"s": 3,
	"w": 3,
	"d": 2,
	"l": 0,
	"u": 0,
	"r": 0,
	"x": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func parseDigit(s string) (tectonic.Digit, error) {
	d, err := strconv.Atoi(s)
	if err != nil || !tectonic.Digit(d).Valid() {
		return 0, fmt.Errorf("digit must be in 1..%d", tectonic.MaxDigit)
	}
	return tectonic.Digit(d), nil
}

// executeCommand applies one editor command to g:
//
//	g               fetch state
//	m ROW COL D     click the cell with primary digit D selected
//	s ROW COL D     click the cell with candidate digit D selected
//	w ROW COL O     toggle a wall, O is h or v
//	d ROWS COLS     resize the grid
//	l               toggle the lock
//	u               undo
//	r               clear non-key cells
//	x               stop and clear the grid
//
// The destructive commands r and x arrive only after the client
// confirmed them with the user. Commands the current mode rejects are
// not errors: the grid simply stays as it is. An error means the
// command itself was malformed.
func executeCommand(g *tectonic.Game, c string) (err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return
	case "m":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		digit, err := parseDigit(parts[3])
		if err != nil {
			return err
		}
		cell := tectonic.CellID{Row: row, Col: col}
		if !g.ValidCell(cell) {
			return errors.New("invalid cell coordinates")
		}
		g.Click(tectonic.PrimarySelection(digit), cell)
		return nil
	case "s":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		digit, err := parseDigit(parts[3])
		if err != nil {
			return err
		}
		cell := tectonic.CellID{Row: row, Col: col}
		if !g.ValidCell(cell) {
			return errors.New("invalid cell coordinates")
		}
		g.Click(tectonic.CandidateSelection(digit), cell)
		return nil
	case "w":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		o, err := tectonic.ParseOrientation(parts[3])
		if err != nil {
			return err
		}
		wall := tectonic.WallID{Row: row, Col: col, Orientation: o}
		if !g.ValidWall(wall) {
			return errors.New("invalid wall coordinates")
		}
		g.ToggleWall(wall)
		return nil
	case "d":
		rows, cols, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		if rows < 1 || cols < 1 {
			return errors.New("grid dimensions must be positive")
		}
		g.Resize(rows, cols)
		return nil
	case "l":
		g.ToggleLock()
		return nil
	case "u":
		g.Undo()
		return nil
	case "r":
		g.Reset()
		return nil
	case "x":
		g.Stop()
		return nil
	}
	return errors.New("invalid command")
}
