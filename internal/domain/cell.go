package domain

import "math/bits"

// allMarks has bits 1..9 set; bit 0 stays clear so that bit i means value i.
const allMarks uint16 = 0b111_111_111_0

// Cell is one board position: either fixed to a value or an open set of
// candidate marks over 1..9. The zero value is not useful; use NewCell.
type Cell struct {
	value uint8  // 1..9 once fixed, 0 while open
	marks uint16 // candidate bitmask, meaningful only while value == 0
}

// NewCell returns an open cell with all nine candidates.
func NewCell() Cell { return Cell{marks: allMarks} }

// FixedCell returns a cell settled to v.
func FixedCell(v uint8) Cell { return Cell{value: v} }

// PossibleCell returns an open cell holding exactly the given candidates.
func PossibleCell(vals ...uint8) Cell {
	var m uint16
	for _, v := range vals {
		m |= 1 << v
	}
	return Cell{marks: m}
}

// IsFixed reports whether the cell's value is settled.
func (c Cell) IsFixed() bool { return c.value != 0 }

// Value returns the settled value, 0 while the cell is still open.
func (c Cell) Value() uint8 { return c.value }

// Has reports whether v is still viable for this cell.
func (c Cell) Has(v uint8) bool {
	if c.value != 0 {
		return c.value == v
	}
	return c.marks&(1<<v) != 0
}

// Remove drops v from an open cell's candidates. Removing an absent value
// is a no-op that still succeeds; only a fixed cell refuses removal.
// Callers that fix values must guard against calling this on fixed cells.
func (c *Cell) Remove(v uint8) bool {
	if c.value != 0 {
		return false
	}
	c.marks &^= 1 << v
	return true
}

// RemoveAll drops every value viable in other from this cell's candidates
// and reports whether the candidate set actually changed. A fixed cell is
// left alone.
func (c *Cell) RemoveAll(other Cell) bool {
	if c.value != 0 {
		return false
	}
	before := c.marks
	c.marks &^= other.markSet()
	return c.marks != before
}

// Intersect returns the candidates viable in both cells as an open cell.
func (c Cell) Intersect(other Cell) Cell {
	return Cell{marks: c.markSet() & other.markSet()}
}

// markSet is the viable-value bitmask regardless of variant.
func (c Cell) markSet() uint16 {
	if c.value != 0 {
		return 1 << c.value
	}
	return c.marks
}

// Values lists the remaining candidates in ascending order. A fixed cell
// lists nothing.
func (c Cell) Values() []uint8 {
	if c.value != 0 {
		return nil
	}
	vals := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if c.marks&(1<<v) != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// Possibilities counts the remaining candidates, 0 for a fixed cell.
func (c Cell) Possibilities() int {
	if c.value != 0 {
		return 0
	}
	return bits.OnesCount16(c.marks)
}
