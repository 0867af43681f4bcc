// Package puzzle reads the plain-text puzzle-line convention: digits 1-9
// for givens, space or '.' for blanks, 81 recognized characters per puzzle,
// lines starting with '#' skipped.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/grid"
)

// ErrShortPuzzle means input ended mid-puzzle.
var ErrShortPuzzle = errors.New("incomplete puzzle")

// Reader pulls 81-character puzzles out of line-oriented text. Characters
// other than digits, space, and '.' are ignored, which lets the rendered
// grid form (with its | and ---+---+--- separators) read straight back in.
type Reader struct {
	sc  *bufio.Scanner
	buf []uint8
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next complete puzzle, io.EOF once input is exhausted.
// Leftover recognized characters at EOF are an ErrShortPuzzle.
func (r *Reader) Next() (domain.Givens, error) {
	var g domain.Givens
	for {
		if len(r.buf) >= 81 {
			copy(g[:], r.buf[:81])
			r.buf = r.buf[81:]
			return g, nil
		}
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return g, err
			}
			if len(r.buf) != 0 {
				return g, fmt.Errorf("%w: %d cells short", ErrShortPuzzle, 81-len(r.buf))
			}
			return g, io.EOF
		}
		line := r.sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for i := 0; i < len(line); i++ {
			switch ch := line[i]; {
			case ch >= '1' && ch <= '9':
				r.buf = append(r.buf, ch-'0')
			case ch == ' ' || ch == '.':
				r.buf = append(r.buf, 0)
			}
		}
	}
}

// ReadAll collects every puzzle remaining in the input.
func ReadAll(rd io.Reader) ([]domain.Givens, error) {
	r := NewReader(rd)
	var out []domain.Givens
	for {
		g, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, g)
	}
}

// Parse reads a single puzzle from a string.
func Parse(s string) (domain.Givens, error) {
	g, err := NewReader(strings.NewReader(s)).Next()
	if err == io.EOF {
		return g, ErrShortPuzzle
	}
	return g, err
}

// Apply plays the givens onto a grid in row-major order, returning the
// first result that is not Continue. Conflict or Insoluble here means the
// starting puzzle is malformed; Finished means it was fully given.
func Apply(g *grid.Grid, givens domain.Givens) domain.Result {
	for i, v := range givens {
		if v == 0 {
			continue
		}
		if res := g.SetCell(i/9, i%9, v); res.Status != domain.StatusContinue {
			return res
		}
	}
	return domain.Continue()
}
