package technique

import (
	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/rules"
)

// HiddenSingle fixes a value only one cell in a house can still hold, even
// though that cell looks like it has several possibilities.
type HiddenSingle struct{}

func (HiddenSingle) Name() string { return "hidden single" }

func (HiddenSingle) Step(g *grid.Grid) StepResult {
	for house := 0; house < rules.NumHouses; house++ {
		cells := g.House(house)
		for val := uint8(1); val <= 9; val++ {
			count, only := 0, 0
			for off, c := range cells {
				if c.IsFixed() || !c.Has(val) {
					continue
				}
				count++
				only = off
			}
			if count == 1 {
				return afterSet(g.SetHouse(house, only, val))
			}
		}
	}
	return stuck()
}

// HiddenPair finds two values confined to the same two cells of a house and
// reduces those cells to exactly that pair.
type HiddenPair struct{}

func (HiddenPair) Name() string { return "hidden pair" }

func (HiddenPair) Step(g *grid.Grid) StepResult {
	for house := 0; house < rules.NumHouses; house++ {
		cells := g.House(house)
		// spots[v] holds the offsets of open cells that can take v.
		var spots [10][]int
		for off, c := range cells {
			if c.IsFixed() {
				continue
			}
			for _, v := range c.Values() {
				spots[v] = append(spots[v], off)
			}
		}
		for a := uint8(1); a <= 8; a++ {
			if len(spots[a]) != 2 {
				continue
			}
			for b := a + 1; b <= 9; b++ {
				if len(spots[b]) != 2 {
					continue
				}
				if spots[a][0] != spots[b][0] || spots[a][1] != spots[b][1] {
					continue
				}
				pair := domain.PossibleCell(a, b)
				changed := false
				for _, off := range spots[a] {
					reduced := g.HouseCell(house, off).Intersect(pair)
					changed = g.AlterHouse(house, off, reduced) || changed
				}
				if changed {
					return acted()
				}
			}
		}
	}
	return stuck()
}
