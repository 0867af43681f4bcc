// Package technique implements the deduction strategies and the orchestrator
// that sequences them. Each technique performs at most one mutation per step
// and tries not to replicate another technique's capability; the orchestrator
// restarts the sequence from the top whenever one acts.
package technique

import (
	"fmt"
	"sort"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
)

// StepKind classifies one technique invocation.
type StepKind int

const (
	Stuck StepKind = iota // full scan found no opportunity
	Acted                 // one mutation applied
	Finished              // the grid is already solved
	Failed                // the attempted mutation broke the grid
)

func (k StepKind) String() string {
	switch k {
	case Stuck:
		return "stuck"
	case Acted:
		return "acted"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// StepResult is the outcome of one technique step. Failure carries the grid
// result behind a Failed kind and is meaningless otherwise.
type StepResult struct {
	Kind    StepKind
	Failure domain.Result
}

func stuck() StepResult    { return StepResult{Kind: Stuck} }
func acted() StepResult    { return StepResult{Kind: Acted} }
func finished() StepResult { return StepResult{Kind: Finished} }

func failed(r domain.Result) StepResult {
	return StepResult{Kind: Failed, Failure: r}
}

// Technique is one deduction strategy. A step scans in a fixed order,
// applies at most one mutation, and returns immediately after it.
type Technique interface {
	Name() string
	Step(g *grid.Grid) StepResult
}

// afterSet folds a SetCell/SetHouse result into a step outcome. Continue
// and Finished both mean the mutation landed.
func afterSet(r domain.Result) StepResult {
	switch r.Status {
	case domain.StatusContinue, domain.StatusFinished:
		return acted()
	default:
		return failed(r)
	}
}

// registry maps technique names to constructors, so callers can assemble
// solver sets from configuration.
var registry = map[string]func() Technique{
	"naked single":  func() Technique { return NakedSingle{} },
	"hidden single": func() Technique { return HiddenSingle{} },
	"naked pair":    func() Technique { return NakedPair{} },
	"hidden pair":   func() Technique { return HiddenPair{} },
	"pointing":      func() Technique { return Pointing{} },
}

// DefaultOrder is the priority order used when no explicit set is given:
// cheapest and most certain first.
var DefaultOrder = []string{
	"naked single",
	"hidden single",
	"naked pair",
	"hidden pair",
	"pointing",
}

// Names lists every registered technique name, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ByNames resolves technique names in the given order. An empty list means
// the default order.
func ByNames(names []string) ([]Technique, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}
	out := make([]Technique, 0, len(names))
	for _, name := range names {
		ctor, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown technique %q", name)
		}
		out = append(out, ctor())
	}
	return out, nil
}
