package technique

import (
	"io"
	"log/slog"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
)

// SolverSet sequences techniques against one grid until it is solved, no
// technique can act, or a mutation fails. Techniques are tried in
// registration order; any action restarts the order from the top so the
// cheaper techniques get first refusal again.
type SolverSet struct {
	techniques []Technique
	defers     []int
	actions    []int
	log        *slog.Logger
	observer   func(domain.StepEvent)
}

// NewSolverSet returns an empty set. A nil logger disables step logging.
func NewSolverSet(logger *slog.Logger) *SolverSet {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SolverSet{log: logger}
}

// Add appends a technique. Order is load-bearing: it is the priority order.
func (s *SolverSet) Add(t Technique) {
	s.techniques = append(s.techniques, t)
	s.defers = append(s.defers, 0)
	s.actions = append(s.actions, 0)
}

// Observe registers a callback invoked after every technique step.
func (s *SolverSet) Observe(fn func(domain.StepEvent)) { s.observer = fn }

// SolveGrid runs the technique list to a terminal state: Finished, Stuck,
// or Failed. Calling it again on a finished grid returns Finished at once.
func (s *SolverSet) SolveGrid(g *grid.Grid) StepResult {
	cursor := 0
	for {
		if g.Done().Status == domain.StatusFinished {
			return finished()
		}
		if cursor == len(s.techniques) {
			return stuck()
		}
		t := s.techniques[cursor]
		s.log.Debug("applying technique", "name", t.Name())
		res := t.Step(g)
		if s.observer != nil {
			s.observer(domain.StepEvent{
				Technique: t.Name(),
				Outcome:   res.Kind.String(),
				Fixed:     g.FixedCount(),
			})
		}
		switch res.Kind {
		case Stuck:
			s.defers[cursor]++
			cursor++
		case Acted:
			s.actions[cursor]++
			cursor = 0
		default:
			return res
		}
		// Backstop: a technique may legally empty a cell's candidate set
		// without its own mutation reporting failure. Treat that as stuck,
		// not as an error; either way these techniques cannot finish.
		if row, col, empty := g.FirstEmptyDomain(); empty {
			s.log.Debug("cell has no remaining candidates", "row", row, "col", col)
			return stuck()
		}
	}
}

// Reports returns per-technique statistics in registration order.
func (s *SolverSet) Reports() []domain.TechniqueReport {
	out := make([]domain.TechniqueReport, len(s.techniques))
	for i, t := range s.techniques {
		out[i] = domain.TechniqueReport{
			Name:    t.Name(),
			Defers:  s.defers[i],
			Actions: s.actions[i],
		}
	}
	return out
}
