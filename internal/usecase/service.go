package usecase

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/ports"
)

type Service struct {
	Solver    ports.StreamSolver
	Hinter    ports.Hinter
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.StreamSolver, h ports.Hinter, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, givens domain.Givens, techniques []string) (domain.SolveReport, error) {
	if u.Solver == nil {
		return domain.SolveReport{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, givens, techniques)
}

func (u *Service) SolveObserved(ctx context.Context, givens domain.Givens, techniques []string, observe func(domain.StepEvent)) (domain.SolveReport, error) {
	if u.Solver == nil {
		return domain.SolveReport{}, errNotConfigured
	}
	return u.Solver.SolveObserved(ctx, givens, techniques, observe)
}

func (u *Service) Hint(ctx context.Context, givens domain.Givens, techniques []string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, givens, techniques)
}

func (u *Service) Validate(ctx context.Context, givens domain.Givens) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, givens)
}

// Persistence
func (u *Service) Save(ctx context.Context, rec *domain.Record) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, rec)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Record, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// TotalActions sums technique actions across a report.
func TotalActions(r domain.SolveReport) int {
	return lo.SumBy(r.Techniques, func(t domain.TechniqueReport) int { return t.Actions })
}

// ActiveTechniques lists the techniques that actually acted during a solve.
func ActiveTechniques(r domain.SolveReport) []string {
	active := lo.Filter(r.Techniques, func(t domain.TechniqueReport, _ int) bool { return t.Actions > 0 })
	return lo.Map(active, func(t domain.TechniqueReport, _ int) string { return t.Name })
}
