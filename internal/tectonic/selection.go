package tectonic

// SelectionKind tags the input layer's active digit selection.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectPrimary
	SelectCandidate
)

// Selection carries the digit the input layer currently has armed.
// Primary and candidate selections are mutually exclusive by
// construction: there is exactly one variant at a time.
type Selection struct {
	Kind  SelectionKind
	Digit Digit
}

func NoSelection() Selection {
	return Selection{}
}

func PrimarySelection(d Digit) Selection {
	return Selection{SelectPrimary, d}
}

func CandidateSelection(d Digit) Selection {
	return Selection{SelectCandidate, d}
}
