package tectonic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDigit bounds the digit alphabet. Both main values and candidates
// come from 1..MaxDigit.
const MaxDigit = 5

// Digit is a single grid digit. Zero means "no digit".
type Digit int

func (d Digit) Valid() bool {
	return 1 <= d && d <= MaxDigit
}

// CellID identifies a cell by its zero-based grid coordinates.
type CellID struct {
	Row, Col int
}

// Key renders the canonical composite key, e.g. "1-2".
func (c CellID) Key() string {
	return fmt.Sprintf("%d-%d", c.Row, c.Col)
}

func (c CellID) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

func (c *CellID) UnmarshalText(text []byte) (err error) {
	*c, err = ParseCellID(string(text))
	return
}

func ParseCellID(s string) (CellID, error) {
	rowStr, colStr, found := strings.Cut(s, "-")
	if !found {
		return CellID{}, fmt.Errorf("invalid cell key %q", s)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return CellID{}, fmt.Errorf("invalid cell key %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return CellID{}, fmt.Errorf("invalid cell key %q: %w", s, err)
	}
	return CellID{row, col}, nil
}

// DigitSet is a set of digits 1..MaxDigit packed into a bitmask. Digit d
// occupies bit d-1. The zero value is the empty set.
type DigitSet uint8

func (s DigitSet) Has(d Digit) bool {
	return d.Valid() && s&(1<<(d-1)) != 0
}

func (s DigitSet) Toggle(d Digit) DigitSet {
	if !d.Valid() {
		return s
	}
	return s ^ (1 << (d - 1))
}

func (s DigitSet) Empty() bool {
	return s == 0
}

func (s DigitSet) Count() int {
	s = ((s & 0xAA) >> 1) + (s & 0x55)
	s = ((s & 0xCC) >> 2) + (s & 0x33)
	s = ((s & 0xF0) >> 4) + (s & 0x0F)
	return int(s)
}

// Digits lists the set's members in ascending order.
func (s DigitSet) Digits() []Digit {
	digits := make([]Digit, 0, s.Count())
	for d := Digit(1); d <= MaxDigit; d++ {
		if s.Has(d) {
			digits = append(digits, d)
		}
	}
	return digits
}

// [DigitSet] implements [json.Marshaler]
func (s DigitSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Digits())
}

func (s *DigitSet) UnmarshalJSON(data []byte) error {
	var digits []Digit
	if err := json.Unmarshal(data, &digits); err != nil {
		return err
	}
	var set DigitSet
	for _, d := range digits {
		if !d.Valid() {
			return errors.New("digit out of range")
		}
		set = set.Toggle(d)
	}
	*s = set
	return nil
}

// CellState holds the contents of one occupied cell. A state with no
// main value and no candidates must never be stored; absence from the
// cell map is the canonical empty.
type CellState struct {
	Value Digit    `json:"value,omitempty"`
	Small DigitSet `json:"small,omitempty"`
	Key   bool     `json:"key,omitempty"`
}

func (c CellState) IsEmpty() bool {
	return c.Value == 0 && c.Small.Empty()
}
