package tectonic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionJSONCarriesTarget(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{
			"digit actions name the cell",
			Action{Kind: ActionPlaceDigit, Cell: CellID{0, 1}, Digit: 3},
			`{"kind":"place-digit","cell":"0-1","digit":3}`,
		},
		{
			"wall actions name the wall",
			Action{Kind: ActionToggleWall, Wall: WallID{1, 2, Horizontal}},
			`{"kind":"toggle-wall","wall":"1-2-h"}`,
		},
		{
			"grid-wide actions carry no target",
			Action{Kind: ActionStop},
			`{"kind":"stop"}`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := json.Marshal(test.action)
			require.NoError(t, err)
			assert.JSONEq(t, test.want, string(b))
		})
	}
}
