package tectonic

// Snapshot is one history entry: cell and wall state at a point in time
// together with the action that produced it. Stored snapshots are
// independent deep copies and never alias live state.
type Snapshot struct {
	Cells      map[CellID]CellState
	Walls      WallSet
	LastAction Action
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Cells:      cloneCells(s.Cells),
		Walls:      s.Walls.Clone(),
		LastAction: s.LastAction,
	}
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Cells: make(map[CellID]CellState),
		Walls: make(WallSet),
	}
}
