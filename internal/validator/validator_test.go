package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-deduce/internal/domain"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()
	v := New()

	cases := []struct {
		name string
		set  func(g *domain.Givens)
		ok   bool
	}{
		{"empty", func(g *domain.Givens) {}, true},
		{"clean", func(g *domain.Givens) {
			g[0] = 1
			g[10] = 2
			g[20] = 3
		}, true},
		{"row dup", func(g *domain.Givens) {
			g[0] = 7
			g[8] = 7
		}, false},
		{"col dup", func(g *domain.Givens) {
			g[3] = 4
			g[3+72] = 4
		}, false},
		{"box dup", func(g *domain.Givens) {
			g[0] = 9
			g[10] = 9 // (1,1), same box, different row and column
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Givens
			tc.set(&g)
			ok, conflicts, err := v.Validate(ctx, g)
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v (conflicts %v)", ok, tc.ok, conflicts)
			}
			if !ok && len(conflicts) == 0 {
				t.Fatal("invalid givens but no conflicts reported")
			}
		})
	}
}
