package tectonic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallKeyRoundTrip(t *testing.T) {
	tests := []struct {
		key  string
		wall WallID
	}{
		{"1-2-h", WallID{1, 2, Horizontal}},
		{"0-0-v", WallID{0, 0, Vertical}},
		{"10-3-h", WallID{10, 3, Horizontal}},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.key, test.wall.Key())
			parsed, err := ParseWallID(test.key)
			require.NoError(t, err)
			assert.Equal(t, test.wall, parsed)
		})
	}

	for _, bad := range []string{"", "1-2", "1-2-x", "h", "a-b-h"} {
		_, err := ParseWallID(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestWallSetToggleAndClone(t *testing.T) {
	s := make(WallSet)
	w := WallID{1, 2, Horizontal}

	s.Toggle(w)
	assert.True(t, s.Has(w))

	clone := s.Clone()
	s.Toggle(w)
	assert.False(t, s.Has(w))
	assert.True(t, clone.Has(w), "clones are independent")
}

func TestWallSetKeysSorted(t *testing.T) {
	s := make(WallSet)
	for _, key := range []string{"2-0-v", "0-1-h", "0-1-v", "0-0-h", "10-0-h"} {
		w, err := ParseWallID(key)
		require.NoError(t, err)
		s.Toggle(w)
	}
	assert.Equal(
		t,
		[]string{"0-0-h", "0-1-h", "0-1-v", "2-0-v", "10-0-h"},
		s.Keys(),
	)
}

func TestWallSetJSON(t *testing.T) {
	s := make(WallSet)
	s.Toggle(WallID{1, 2, Horizontal})
	s.Toggle(WallID{0, 0, Vertical})

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["0-0-v","1-2-h"]`, string(b))

	var back WallSet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}
