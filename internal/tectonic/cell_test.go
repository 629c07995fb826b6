package tectonic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveCount(s DigitSet) (count int) {
	for d := Digit(1); d <= MaxDigit; d++ {
		if s.Has(d) {
			count += 1
		}
	}
	return
}

func TestDigitSetCount(t *testing.T) {
	for i := range 1 << MaxDigit {
		require.Equal(t, naiveCount(DigitSet(i)), DigitSet(i).Count())
	}
}

func TestDigitSetToggle(t *testing.T) {
	var s DigitSet
	s = s.Toggle(2)
	s = s.Toggle(5)
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(1))

	s = s.Toggle(2)
	assert.False(t, s.Has(2))

	s = s.Toggle(0)
	s = s.Toggle(6)
	assert.Equal(t, []Digit{5}, s.Digits(), "out-of-range digits are ignored")
}

func TestDigitSetJSON(t *testing.T) {
	var s DigitSet
	s = s.Toggle(3)
	s = s.Toggle(1)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,3]", string(b))

	var back DigitSet
	require.NoError(t, json.Unmarshal([]byte("[3,1]"), &back))
	assert.Equal(t, s, back)

	assert.Error(t, json.Unmarshal([]byte("[9]"), &back))
}

func TestCellKeyRoundTrip(t *testing.T) {
	id := CellID{Row: 4, Col: 11}
	assert.Equal(t, "4-11", id.Key())

	parsed, err := ParseCellID("4-11")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "4", "a-b", "4-"} {
		_, err := ParseCellID(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestCellStateEmpty(t *testing.T) {
	assert.True(t, CellState{}.IsEmpty())
	assert.True(t, CellState{Key: true}.IsEmpty())
	assert.False(t, CellState{Value: 1}.IsEmpty())
	assert.False(t, CellState{Small: DigitSet(0).Toggle(2)}.IsEmpty())
}
