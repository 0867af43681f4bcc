package rules

import (
	"testing"

	"svw.info/sudoku-deduce/internal/domain"
)

func TestSeesShape(t *testing.T) {
	n := NewNormal()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			seen := n.Sees(row, col)
			// 8 in the row, 8 in the column, 4 box cells off both axes
			if len(seen) != 20 {
				t.Fatalf("sees(%d,%d) has %d entries, want 20", row, col, len(seen))
			}
			dup := map[domain.CellCoord]bool{}
			for _, p := range seen {
				if p.Row == row && p.Col == col {
					t.Fatalf("sees(%d,%d) contains itself", row, col)
				}
				if dup[p] {
					t.Fatalf("sees(%d,%d) lists %v twice", row, col, p)
				}
				dup[p] = true
			}
		}
	}
}

func TestSeesSymmetric(t *testing.T) {
	n := NewNormal()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for _, p := range n.Sees(row, col) {
				back := false
				for _, q := range n.Sees(p.Row, p.Col) {
					if q.Row == row && q.Col == col {
						back = true
						break
					}
				}
				if !back {
					t.Fatalf("(%d,%d) sees %v but not vice versa", row, col, p)
				}
			}
		}
	}
}

func TestOverlapSymmetric(t *testing.T) {
	for h := 0; h < NumHouses; h++ {
		for _, o := range OverlappingHouses(h) {
			back := false
			for _, b := range OverlappingHouses(o) {
				if b == h {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("house %d overlaps %d but not vice versa", h, o)
			}
		}
	}
}

func TestOverlapShape(t *testing.T) {
	for h := 0; h < BoxHouse; h++ {
		if got := len(OverlappingHouses(h)); got != 3 {
			t.Fatalf("line house %d overlaps %d houses, want 3", h, got)
		}
	}
	for h := BoxHouse; h < NumHouses; h++ {
		if got := len(OverlappingHouses(h)); got != 6 {
			t.Fatalf("box house %d overlaps %d houses, want 6", h, got)
		}
	}
}

func TestBoxAt(t *testing.T) {
	cases := []struct {
		row, col, box int
	}{
		{0, 0, 0}, {2, 2, 0}, {0, 3, 1}, {1, 8, 2},
		{4, 4, 4}, {5, 0, 3}, {8, 8, 8}, {6, 5, 7},
	}
	for _, tc := range cases {
		if got := BoxAt(tc.row, tc.col); got != tc.box {
			t.Fatalf("BoxAt(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.box)
		}
	}
	// membership agrees with the box table
	for b := 0; b < 9; b++ {
		for _, p := range BoxCells(b) {
			if BoxAt(p.Row, p.Col) != b {
				t.Fatalf("cell %v listed in box %d but BoxAt says %d", p, b, BoxAt(p.Row, p.Col))
			}
		}
	}
}
