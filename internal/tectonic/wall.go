package tectonic

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Orientation distinguishes the two edges a wall can occupy.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "h":
		return Horizontal, nil
	case "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("invalid orientation %q", s)
}

// WallID identifies a wall by the cell whose edge it sits on and the
// edge orientation: horizontal walls run under the cell, vertical walls
// along its right side. Boundary edges are valid walls.
type WallID struct {
	Row, Col    int
	Orientation Orientation
}

// Key renders the canonical composite key, e.g. "1-2-h".
func (w WallID) Key() string {
	return fmt.Sprintf("%d-%d-%s", w.Row, w.Col, w.Orientation)
}

// Cell returns the cell this wall's edge belongs to.
func (w WallID) Cell() CellID {
	return CellID{w.Row, w.Col}
}

func ParseWallID(s string) (WallID, error) {
	rest, oStr, found := cutLast(s, "-")
	if !found {
		return WallID{}, fmt.Errorf("invalid wall key %q", s)
	}
	o, err := ParseOrientation(oStr)
	if err != nil {
		return WallID{}, fmt.Errorf("invalid wall key %q: %w", s, err)
	}
	rowStr, colStr, found := strings.Cut(rest, "-")
	if !found {
		return WallID{}, fmt.Errorf("invalid wall key %q", s)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return WallID{}, fmt.Errorf("invalid wall key %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return WallID{}, fmt.Errorf("invalid wall key %q: %w", s, err)
	}
	return WallID{row, col, o}, nil
}

func cutLast(s string, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// WallSet is a set of wall identities. Absence means "no wall".
type WallSet map[WallID]struct{}

func (s WallSet) Has(w WallID) bool {
	_, ok := s[w]
	return ok
}

// Toggle flips membership of w.
func (s WallSet) Toggle(w WallID) {
	if s.Has(w) {
		delete(s, w)
	} else {
		s[w] = struct{}{}
	}
}

func (s WallSet) Clone() WallSet {
	dst := make(WallSet, len(s))
	for w := range s {
		dst[w] = struct{}{}
	}
	return dst
}

// Keys lists the wall keys in row, column, orientation order.
func (s WallSet) Keys() []string {
	walls := make([]WallID, 0, len(s))
	for w := range s {
		walls = append(walls, w)
	}
	slices.SortFunc(walls, func(a, b WallID) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Col, b.Col); c != 0 {
			return c
		}
		return cmp.Compare(int(a.Orientation), int(b.Orientation))
	})
	keys := make([]string, len(walls))
	for i, w := range walls {
		keys[i] = w.Key()
	}
	return keys
}

// [WallSet] implements [json.Marshaler]
func (s WallSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

func (s *WallSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	set := make(WallSet, len(keys))
	for _, key := range keys {
		w, err := ParseWallID(key)
		if err != nil {
			return err
		}
		set[w] = struct{}{}
	}
	*s = set
	return nil
}
