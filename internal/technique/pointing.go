package technique

import (
	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/rules"
)

// Pointing: when every cell of a house that can still hold a value sits
// inside a single overlapping house, the value cannot appear anywhere else
// in that overlapping house.
type Pointing struct{}

func (Pointing) Name() string { return "pointing" }

func (Pointing) Step(g *grid.Grid) StepResult {
	for house := 0; house < rules.NumHouses; house++ {
		for val := uint8(1); val <= 9; val++ {
			var spots []domain.CellCoord
			settled := false
			for off := 0; off < 9; off++ {
				c := g.HouseCell(house, off)
				if c.IsFixed() {
					if c.Value() == val {
						settled = true
						break
					}
					continue
				}
				if c.Has(val) {
					row, col := grid.HouseCellToRowCol(house, off)
					spots = append(spots, domain.CellCoord{Row: row, Col: col})
				}
			}
			// A lone capable cell is hidden-single territory, not ours.
			if settled || len(spots) < 2 {
				continue
			}
			for _, over := range g.Rules().OverlappingHouses(house) {
				confined := true
				for _, p := range spots {
					if !houseContains(over, p.Row, p.Col) {
						confined = false
						break
					}
				}
				if !confined {
					continue
				}
				capable := 0
				for off := 0; off < 9; off++ {
					c := g.HouseCell(over, off)
					if !c.IsFixed() && c.Has(val) {
						capable++
					}
				}
				// With fewer than three capable cells the overlap already
				// covers them all and there is nothing to prune.
				if capable < 3 {
					continue
				}
				changed := false
				for off := 0; off < 9; off++ {
					row, col := grid.HouseCellToRowCol(over, off)
					if houseContains(house, row, col) {
						continue
					}
					c := g.Cell(row, col)
					if c.IsFixed() || !c.Has(val) {
						continue
					}
					c.Remove(val)
					changed = g.AlterHouse(over, off, c) || changed
				}
				if changed {
					return acted()
				}
			}
		}
	}
	return stuck()
}

// houseContains reports whether (row, col) belongs to house.
func houseContains(house, row, col int) bool {
	switch {
	case house < rules.ColHouse:
		return row == house
	case house < rules.BoxHouse:
		return col == house-rules.ColHouse
	default:
		return rules.BoxAt(row, col) == house-rules.BoxHouse
	}
}
