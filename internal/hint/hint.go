// Package hint suggests the next logical step for a position by running a
// single technique step against a scratch grid.
package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/puzzle"
	"svw.info/sudoku-deduce/internal/rules"
	"svw.info/sudoku-deduce/internal/technique"
)

// Steps hints with whichever technique in the list acts first.
type Steps struct {
	rules rules.Ruleset
}

func NewSteps() *Steps { return &Steps{rules: rules.NewNormal()} }

// Hint returns the first technique action available from the given position
// and the cells it touches. found is false when every technique is stuck or
// the puzzle is already complete.
func (h *Steps) Hint(ctx context.Context, givens domain.Givens, techniques []string) (domain.Hint, bool, error) {
	ts, err := technique.ByNames(techniques)
	if err != nil {
		return domain.Hint{}, false, err
	}
	g := grid.New(h.rules)
	if res := puzzle.Apply(g, givens); res.Status == domain.StatusConflict || res.Status == domain.StatusInsoluble {
		return domain.Hint{}, false, fmt.Errorf("bad puzzle: %s", res)
	}
	for _, t := range ts {
		work := g.Clone()
		res := t.Step(work)
		if res.Kind != technique.Acted {
			continue
		}
		var cells []domain.CellCoord
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if work.Cell(r, c) != g.Cell(r, c) {
					cells = append(cells, domain.CellCoord{Row: r, Col: c})
				}
			}
		}
		return domain.Hint{
			Message:   fmt.Sprintf("%s applies here", t.Name()),
			Technique: t.Name(),
			Cells:     cells,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
