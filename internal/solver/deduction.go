// Package solver assembles the deduction engine behind the ports.Solver
// interface. It never guesses: puzzles beyond the registered techniques
// come back stuck rather than searched.
package solver

import (
	"context"
	"log/slog"
	"time"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/puzzle"
	"svw.info/sudoku-deduce/internal/rules"
	"svw.info/sudoku-deduce/internal/technique"
)

// Deduction owns a shared immutable ruleset; each Solve builds a fresh grid
// and solver set around it. Concurrent Solves are safe.
type Deduction struct {
	rules rules.Ruleset
	log   *slog.Logger
}

// NewDeduction wires a solver over the classic ruleset.
func NewDeduction(logger *slog.Logger) *Deduction {
	return &Deduction{rules: rules.NewNormal(), log: logger}
}

func (s *Deduction) Solve(ctx context.Context, givens domain.Givens, techniques []string) (domain.SolveReport, error) {
	return s.SolveObserved(ctx, givens, techniques, nil)
}

// SolveObserved is Solve with a per-step callback, used by the live
// streaming endpoint. A nil observe is fine.
func (s *Deduction) SolveObserved(ctx context.Context, givens domain.Givens, techniques []string, observe func(domain.StepEvent)) (domain.SolveReport, error) {
	start := time.Now()
	ts, err := technique.ByNames(techniques)
	if err != nil {
		return domain.SolveReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.SolveReport{}, err
	}

	g := grid.New(s.rules)
	set := technique.NewSolverSet(s.log)
	for _, t := range ts {
		set.Add(t)
	}
	if observe != nil {
		set.Observe(observe)
	}

	if res := puzzle.Apply(g, givens); res.Status == domain.StatusConflict || res.Status == domain.StatusInsoluble {
		// Malformed starting puzzle: report it, don't solve it.
		return s.report(g, set, domain.OutcomeFailed, &res, start), nil
	}

	res := set.SolveGrid(g)
	switch res.Kind {
	case technique.Finished:
		return s.report(g, set, domain.OutcomeSolved, nil, start), nil
	case technique.Failed:
		return s.report(g, set, domain.OutcomeFailed, &res.Failure, start), nil
	default:
		return s.report(g, set, domain.OutcomeStuck, nil, start), nil
	}
}

func (s *Deduction) report(g *grid.Grid, set *technique.SolverSet, out domain.Outcome, failure *domain.Result, start time.Time) domain.SolveReport {
	dur := time.Since(start)
	return domain.SolveReport{
		Outcome:    out,
		Grid:       g.String(),
		Fixed:      g.FixedCount(),
		Failure:    failure,
		Techniques: set.Reports(),
		Duration:   dur,
		DurationMs: dur.Milliseconds(),
	}
}
