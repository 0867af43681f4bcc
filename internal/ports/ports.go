package ports

import (
	"context"

	"svw.info/sudoku-deduce/internal/domain"
)

// Solver runs the deduction engine over a puzzle with the named techniques
// (empty means the default order).
type Solver interface {
	Solve(ctx context.Context, givens domain.Givens, techniques []string) (domain.SolveReport, error)
}

// StreamSolver additionally reports each orchestrator step as it happens.
type StreamSolver interface {
	Solver
	SolveObserved(ctx context.Context, givens domain.Givens, techniques []string, observe func(domain.StepEvent)) (domain.SolveReport, error)
}

// Hinter returns the next logical step up to the named techniques.
type Hinter interface {
	Hint(ctx context.Context, givens domain.Givens, techniques []string) (domain.Hint, bool, error)
}

// Validator performs fast constraint checks (row/col/box) on raw givens.
type Validator interface {
	Validate(ctx context.Context, givens domain.Givens) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, rec *domain.Record) error
	Load(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
