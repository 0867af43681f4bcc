package puzzle

import (
	"errors"
	"io"
	"strings"
	"testing"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
	"svw.info/sudoku-deduce/internal/rules"
)

var normal = rules.NewNormal()

func TestParseSingleLine(t *testing.T) {
	text := "4  27 6  798156234 2 84   7237468951849531726561792843 82 15479 7  243    4 87  2"
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g[0] != 4 || g[1] != 0 || g[80] != 2 {
		t.Fatalf("cells = %d %d ... %d", g[0], g[1], g[80])
	}
}

func TestDotsAndSpacesAreBlanks(t *testing.T) {
	dots := strings.ReplaceAll("1 2 3    "+strings.Repeat(" ", 72), " ", ".")
	spaces := strings.ReplaceAll(dots, ".", " ")
	a, err := Parse(dots)
	if err != nil {
		t.Fatalf("dots: %v", err)
	}
	b, err := Parse(spaces)
	if err != nil {
		t.Fatalf("spaces: %v", err)
	}
	if a != b {
		t.Fatal("dot and space blanks parsed differently")
	}
}

func TestCommentsAndNoiseIgnored(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("# a puzzle\n")
	sb.WriteString("12 |4..|...\n")
	sb.WriteString("---+---+---\n") // contributes nothing
	sb.WriteString(strings.Repeat(".", 72))
	sb.WriteString("\n")
	g, err := Parse(sb.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g[0] != 1 || g[1] != 2 || g[2] != 0 || g[3] != 4 {
		t.Fatalf("first row = %v", g[:4])
	}
	if g.Count() != 3 {
		t.Fatalf("givens = %d, want 3", g.Count())
	}
}

func TestMultiplePuzzles(t *testing.T) {
	text := strings.Repeat(".", 81) + "\n" + strings.Repeat(".", 80) + "5\n"
	gs, err := ReadAll(strings.NewReader(text))
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(gs) != 2 {
		t.Fatalf("puzzles = %d, want 2", len(gs))
	}
	if gs[0].Count() != 0 || gs[1][80] != 5 {
		t.Fatal("puzzle boundaries wrong")
	}
}

func TestShortPuzzle(t *testing.T) {
	r := NewReader(strings.NewReader(strings.Repeat(".", 50)))
	_, err := r.Next()
	if !errors.Is(err, ErrShortPuzzle) {
		t.Fatalf("err = %v, want ErrShortPuzzle", err)
	}
}

func TestEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader("# only comments\n"))
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("err = %v, want EOF", err)
	}
}

func TestApplyConflict(t *testing.T) {
	// two 5s in the same row
	var givens domain.Givens
	givens[0] = 5
	givens[4] = 5
	g := grid.New(normal)
	res := Apply(g, givens)
	if res.Status != domain.StatusConflict {
		t.Fatalf("apply = %v, want conflict", res)
	}
	if res.Row != 0 || res.Col != 4 {
		t.Fatalf("conflict at (%d,%d), want (0,4)", res.Row, res.Col)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	g := grid.New(normal)
	g.SetCell(0, 0, 5)
	g.SetCell(4, 4, 1)
	g.SetCell(8, 8, 9)
	parsed, err := Parse(g.String())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if parsed != g.Givens() {
		t.Fatal("rendered grid did not read back to the same givens")
	}
}
