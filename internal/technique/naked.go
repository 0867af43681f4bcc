package technique

import (
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/rules"
)

// NakedSingle fixes any open cell left with exactly one candidate: the cell
// cannot be anything but the single pencil mark present.
type NakedSingle struct{}

func (NakedSingle) Name() string { return "naked single" }

func (NakedSingle) Step(g *grid.Grid) StepResult {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			c := g.Cell(row, col)
			if c.IsFixed() || c.Possibilities() != 1 {
				continue
			}
			return afterSet(g.SetCell(row, col, c.Values()[0]))
		}
	}
	return stuck()
}

// NakedPair finds two cells in a house holding the same two candidates and
// removes those candidates from the rest of the house.
type NakedPair struct{}

func (NakedPair) Name() string { return "naked pair" }

func (NakedPair) Step(g *grid.Grid) StepResult {
	for house := 0; house < rules.NumHouses; house++ {
		cells := g.House(house)
		for a := 0; a < 8; a++ {
			if cells[a].Possibilities() != 2 {
				continue
			}
			for b := a + 1; b < 9; b++ {
				if cells[a] != cells[b] {
					continue
				}
				// A pair, but only worth reporting if it removes anything.
				changed := false
				for other := 0; other < 9; other++ {
					if other == a || other == b {
						continue
					}
					oc := g.HouseCell(house, other)
					if oc.RemoveAll(cells[a]) {
						changed = g.AlterHouse(house, other, oc) || changed
					}
				}
				if changed {
					return acted()
				}
			}
		}
	}
	return stuck()
}
