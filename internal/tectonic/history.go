package tectonic

// history is a linear undo stack seeded with one empty snapshot. The
// cursor always points at the active entry: 0 <= cursor < size().
type history struct {
	snapshots []Snapshot
	cursor    int
}

func newHistory() *history {
	return &history{snapshots: []Snapshot{emptySnapshot()}}
}

// push deep-copies snap, discards every entry past the cursor and
// appends. Once truncated, forward states are gone for good; there is
// no redo.
func (h *history) push(snap Snapshot) {
	h.snapshots = append(h.snapshots[:h.cursor+1], snap.Clone())
	h.cursor += 1
}

// undo steps the cursor back one entry and returns a deep copy of the
// snapshot it lands on. At the seed entry ok is false and the cursor
// stays put.
func (h *history) undo() (Snapshot, bool) {
	if h.cursor <= 0 {
		return Snapshot{}, false
	}
	h.cursor -= 1
	return h.snapshots[h.cursor].Clone(), true
}

func (h *history) canUndo() bool {
	return h.cursor > 0
}

func (h *history) size() int {
	return len(h.snapshots)
}
