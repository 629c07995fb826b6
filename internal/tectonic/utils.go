package tectonic

import "github.com/sirupsen/logrus"

var Log = logrus.New()

func cloneCells(cells map[CellID]CellState) map[CellID]CellState {
	dst := make(map[CellID]CellState, len(cells))
	for id, cell := range cells {
		dst[id] = cell
	}
	return dst
}
