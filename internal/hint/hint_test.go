package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-deduce/internal/puzzle"
)

const nakedSingleOnly = "   26 7 168  7  9 19   45  82 1   4   46 29   5   3 28  93   74 4  5  367 3 18   "

func TestHintFindsNakedSingle(t *testing.T) {
	givens, err := puzzle.Parse(nakedSingleOnly)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := NewSteps()
	got, found, err := h.Hint(context.Background(), givens, nil)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if !found {
		t.Fatal("no hint found on a solvable position")
	}
	if got.Technique != "naked single" {
		t.Fatalf("technique = %q, want naked single", got.Technique)
	}
	if len(got.Cells) == 0 {
		t.Fatal("hint names no cells")
	}
}

func TestHintRejectsBadPuzzle(t *testing.T) {
	givens, _ := puzzle.Parse(nakedSingleOnly)
	// duplicate an existing given within its row
	for i, v := range givens {
		if v != 0 {
			row := i / 9
			for c := 0; c < 9; c++ {
				if givens[row*9+c] == 0 {
					givens[row*9+c] = v
					break
				}
			}
			break
		}
	}
	h := NewSteps()
	if _, _, err := h.Hint(context.Background(), givens, nil); err == nil {
		t.Fatal("conflicting puzzle accepted")
	}
}

func TestHintUnknownTechnique(t *testing.T) {
	h := NewSteps()
	if _, _, err := h.Hint(context.Background(), [81]uint8{}, []string{"jellyfish"}); err == nil {
		t.Fatal("unknown technique accepted")
	}
}
