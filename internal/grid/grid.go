// Package grid holds the 81-cell board and the mutation API techniques act
// through. Setting a cell propagates eliminations to everything the ruleset
// says it sees.
package grid

import (
	"strings"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/rules"
)

// Grid is one board mid-solve. It owns its cells exclusively; the ruleset
// is shared and immutable for the grid's lifetime.
type Grid struct {
	cells [81]domain.Cell
	rules rules.Ruleset
}

// New returns an empty grid where every cell still admits every value.
func New(rs rules.Ruleset) *Grid {
	g := &Grid{rules: rs}
	for i := range g.cells {
		g.cells[i] = domain.NewCell()
	}
	return g
}

// Rules returns the shared ruleset the grid was built with.
func (g *Grid) Rules() rules.Ruleset { return g.rules }

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) domain.Cell {
	return g.cells[row*9+col]
}

// Clone returns an independent copy sharing the same ruleset.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Done reports Finished once every cell is fixed, Continue otherwise.
func (g *Grid) Done() domain.Result {
	for i := range g.cells {
		if !g.cells[i].IsFixed() {
			return domain.Continue()
		}
	}
	return domain.Finished()
}

// SetCell fixes (row, col) to val and erases val from every cell this one
// sees. It is the single state-mutating entry point for assignments; the
// propagation runs to completion before returning.
func (g *Grid) SetCell(row, col int, val uint8) domain.Result {
	c := g.cells[row*9+col]
	if c.IsFixed() {
		if c.Value() == val {
			return g.Done()
		}
		return domain.Conflict(row, col)
	}
	if !c.Has(val) {
		return domain.Conflict(row, col)
	}
	g.cells[row*9+col] = domain.FixedCell(val)
	for _, p := range g.rules.Sees(row, col) {
		idx := p.Row*9 + p.Col
		if g.cells[idx].IsFixed() {
			// Fixed to a different value by the no-conflict invariant.
			continue
		}
		if !g.cells[idx].Remove(val) {
			return domain.Insoluble(p.Row, p.Col)
		}
	}
	return g.Done()
}

// SetHouse fixes the cell at (house, offset) to val.
func (g *Grid) SetHouse(house, offset int, val uint8) domain.Result {
	row, col := HouseCellToRowCol(house, offset)
	return g.SetCell(row, col, val)
}

// House returns the 9 cells of a row, column, or box house in canonical
// offset order.
func (g *Grid) House(house int) [9]domain.Cell {
	var out [9]domain.Cell
	for off := 0; off < 9; off++ {
		row, col := HouseCellToRowCol(house, off)
		out[off] = g.cells[row*9+col]
	}
	return out
}

// HouseCell returns the single cell at (house, offset).
func (g *Grid) HouseCell(house, offset int) domain.Cell {
	row, col := HouseCellToRowCol(house, offset)
	return g.cells[row*9+col]
}

// AlterHouse overwrites the cell at (house, offset) with a reduced cell
// state, reporting whether anything changed. Techniques use it for
// eliminations that are not single-value fixations; it does not propagate.
func (g *Grid) AlterHouse(house, offset int, c domain.Cell) bool {
	row, col := HouseCellToRowCol(house, offset)
	idx := row*9 + col
	if g.cells[idx] == c {
		return false
	}
	g.cells[idx] = c
	return true
}

// HouseCellToRowCol maps (house, offset) to board coordinates. Rows map
// directly, columns swap the axes, boxes go through the box table.
func HouseCellToRowCol(house, offset int) (int, int) {
	switch {
	case house < rules.ColHouse:
		return house, offset
	case house < rules.BoxHouse:
		return offset, house - rules.ColHouse
	default:
		p := rules.BoxCells(house - rules.BoxHouse)[offset]
		return p.Row, p.Col
	}
}

// FirstEmptyDomain scans row-major for an open cell with no candidates
// left. It is the contradiction backstop the orchestrator runs after every
// technique step.
func (g *Grid) FirstEmptyDomain() (int, int, bool) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			c := g.cells[row*9+col]
			if !c.IsFixed() && c.Possibilities() == 0 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// FixedCount returns how many cells are settled.
func (g *Grid) FixedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsFixed() {
			n++
		}
	}
	return n
}

// Givens snapshots the fixed cells, 0 for anything still open.
func (g *Grid) Givens() domain.Givens {
	var out domain.Givens
	for i := range g.cells {
		out[i] = g.cells[i].Value()
	}
	return out
}

// String renders the grid: digits for fixed cells, blanks for open ones,
// with | after columns 2 and 5 and ---+---+--- after rows 2 and 5.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if c := g.cells[row*9+col]; c.IsFixed() {
				b.WriteByte('0' + c.Value())
			} else {
				b.WriteByte(' ')
			}
			if col == 2 || col == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if row == 2 || row == 5 {
			b.WriteString("---+---+---\n")
		}
	}
	return b.String()
}
