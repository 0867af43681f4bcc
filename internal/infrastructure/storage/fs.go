package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-deduce/internal/domain"
)

// FS persists solve records as JSON files, bucketed by outcome.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func outcomeDir(o domain.Outcome) string {
	switch o {
	case domain.OutcomeSolved:
		return "solved"
	case domain.OutcomeFailed:
		return "failed"
	default:
		return "stuck"
	}
}

func (s *FS) pathFor(id string, o domain.Outcome) string {
	return filepath.Join(s.dir, outcomeDir(o), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, rec *domain.Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New("invalid record: missing ID")
	}
	target := s.pathFor(rec.ID, rec.Report.Outcome)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Record, error) {
	candidates := []string{
		filepath.Join(s.dir, "solved", id+".json"),
		filepath.Join(s.dir, "stuck", id+".json"),
		filepath.Join(s.dir, "failed", id+".json"),
		filepath.Join(s.dir, id+".json"), // legacy flat layout
	}
	var data []byte
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	var out []domain.RecordMeta
	buckets := []string{"solved", "stuck", "failed", "."}
	for _, b := range buckets {
		dir := filepath.Join(s.dir, b)
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var rec domain.Record
			if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
				continue
			}
			out = append(out, domain.RecordMeta{
				ID:        rec.ID,
				Name:      rec.Name,
				Outcome:   rec.Report.Outcome,
				CreatedAt: rec.CreatedAt,
			})
		}
	}
	return out, nil
}
