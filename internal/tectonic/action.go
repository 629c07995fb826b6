package tectonic

import "encoding/json"

// ActionKind names the mutation that produced a state.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPlaceDigit
	ActionClearCell
	ActionToggleCandidate
	ActionToggleWall
	ActionReset
	ActionStop
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlaceDigit:
		return "place-digit"
	case ActionClearCell:
		return "clear-cell"
	case ActionToggleCandidate:
		return "toggle-candidate"
	case ActionToggleWall:
		return "toggle-wall"
	case ActionReset:
		return "reset"
	case ActionStop:
		return "stop"
	}
	return "none"
}

// Action describes the mutation that produced a state. It is kept for
// display and auditing only and is never replayed.
type Action struct {
	Kind  ActionKind
	Cell  CellID
	Wall  WallID
	Digit Digit
}

func (a Action) None() bool {
	return a.Kind == ActionNone
}

type ActionJSON struct {
	Kind  string `json:"kind"`
	Cell  string `json:"cell,omitempty"`
	Wall  string `json:"wall,omitempty"`
	Digit int    `json:"digit,omitempty"`
}

// [Action] implements [json.Marshaler]
func (a Action) MarshalJSON() ([]byte, error) {
	payload := ActionJSON{Kind: a.Kind.String()}
	switch a.Kind {
	case ActionPlaceDigit, ActionClearCell, ActionToggleCandidate:
		payload.Cell = a.Cell.Key()
		payload.Digit = int(a.Digit)
	case ActionToggleWall:
		payload.Wall = a.Wall.Key()
	}
	return json.Marshal(payload)
}
