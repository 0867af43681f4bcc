// Package rules defines the visibility relation between cells: which cells
// constrain each other, and which houses overlap which. For classic Sudoku
// this is fixed 9x9 geometry, computed once and shared read-only.
package rules

import "svw.info/sudoku-deduce/internal/domain"

// Houses 0..8 are the rows, 9..17 the columns, 18..26 the boxes.
const (
	ColHouse  = 9
	BoxHouse  = 18
	NumHouses = 27
)

// Ruleset defines which cells see each other and which houses overlap.
// Implementations are immutable once constructed and safe to share across
// grids, including concurrently solved ones.
type Ruleset interface {
	// Sees lists every other cell sharing a constraint with (row, col),
	// duplicates removed, in a fixed order.
	Sees(row, col int) []domain.CellCoord
	// OverlappingHouses lists the houses sharing at least one cell with house.
	OverlappingHouses(house int) []int
}

// boxes lists the cells of each 3x3 box in reading order.
var boxes = func() (b [9][9]domain.CellCoord) {
	for i := 0; i < 9; i++ {
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			b[i][j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
		}
	}
	return
}()

// houseOverlaps is static: a band of rows overlaps the three boxes crossing
// it, a stack of columns likewise, and each box overlaps the three rows and
// three columns crossing it.
var houseOverlaps = [NumHouses][]int{
	0: {18, 19, 20}, 1: {18, 19, 20}, 2: {18, 19, 20},
	3: {21, 22, 23}, 4: {21, 22, 23}, 5: {21, 22, 23},
	6: {24, 25, 26}, 7: {24, 25, 26}, 8: {24, 25, 26},
	9: {18, 21, 24}, 10: {18, 21, 24}, 11: {18, 21, 24},
	12: {19, 22, 25}, 13: {19, 22, 25}, 14: {19, 22, 25},
	15: {20, 23, 26}, 16: {20, 23, 26}, 17: {20, 23, 26},
	18: {0, 1, 2, 9, 10, 11},
	19: {0, 1, 2, 12, 13, 14},
	20: {0, 1, 2, 15, 16, 17},
	21: {3, 4, 5, 9, 10, 11},
	22: {3, 4, 5, 12, 13, 14},
	23: {3, 4, 5, 15, 16, 17},
	24: {6, 7, 8, 9, 10, 11},
	25: {6, 7, 8, 12, 13, 14},
	26: {6, 7, 8, 15, 16, 17},
}

// OverlappingHouses returns the houses sharing at least one cell with house.
// The table is a pure function of the 9x9 geometry, common to all rulesets.
func OverlappingHouses(house int) []int { return houseOverlaps[house] }

// BoxAt returns the index of the box containing (row, col).
func BoxAt(row, col int) int { return (row/3)*3 + col/3 }

// BoxCells returns the cells of box b in reading order.
func BoxCells(b int) [9]domain.CellCoord { return boxes[b] }

// Normal is the classic ruleset: cells see their row, column, and box.
type Normal struct {
	sees [81][]domain.CellCoord
}

// NewNormal precomputes the sees list for every cell. The result holds no
// per-puzzle state and lives for as long as anything references it.
func NewNormal() *Normal {
	n := &Normal{}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			seen := make([]domain.CellCoord, 0, 20)
			for col2 := 0; col2 < 9; col2++ {
				if col2 != col {
					seen = append(seen, domain.CellCoord{Row: row, Col: col2})
				}
			}
			for row2 := 0; row2 < 9; row2++ {
				if row2 != row {
					seen = append(seen, domain.CellCoord{Row: row2, Col: col})
				}
			}
			// Box cells sharing our row or column are already listed above.
			for _, bc := range boxes[BoxAt(row, col)] {
				if bc.Row != row && bc.Col != col {
					seen = append(seen, bc)
				}
			}
			n.sees[row*9+col] = seen
		}
	}
	return n
}

func (n *Normal) Sees(row, col int) []domain.CellCoord {
	return n.sees[row*9+col]
}

func (n *Normal) OverlappingHouses(house int) []int {
	return OverlappingHouses(house)
}
