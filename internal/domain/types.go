package domain

import "time"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Givens is a puzzle's starting state in row-major order, 0 for blanks.
type Givens [81]uint8

// Count returns the number of given (non-blank) cells.
func (g Givens) Count() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// Outcome labels the terminal state of a solve attempt.
type Outcome string

const (
	OutcomeSolved Outcome = "solved" // every cell fixed
	OutcomeStuck  Outcome = "stuck"  // no registered technique can proceed
	OutcomeFailed Outcome = "failed" // a mutation hit a conflict or emptied a cell
)

// TechniqueReport is the post-solve statistics line for one technique.
type TechniqueReport struct {
	Name    string `json:"name"`
	Defers  int    `json:"defers"`  // times the technique found nothing
	Actions int    `json:"actions"` // times it mutated the grid
}

// SolveReport describes one finished solve attempt.
type SolveReport struct {
	Outcome    Outcome           `json:"outcome"`
	Grid       string            `json:"grid"`
	Fixed      int               `json:"fixed"`
	Failure    *Result           `json:"failure,omitempty"`
	Techniques []TechniqueReport `json:"techniques"`
	Duration   time.Duration     `json:"-"`
	DurationMs int64             `json:"durationMs"`
}

// StepEvent describes one orchestrator step, for live observers.
type StepEvent struct {
	Technique string `json:"technique"`
	Outcome   string `json:"outcome"`
	Fixed     int    `json:"fixed"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message   string      `json:"message,omitempty"`
	Technique string      `json:"technique,omitempty"`
	Cells     []CellCoord `json:"cells,omitempty"`
}

// Record is a persisted solve: the puzzle text plus its report.
type Record struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name,omitempty"`
	Puzzle    string      `json:"puzzle"`
	Report    SolveReport `json:"report"`
	CreatedAt int64       `json:"createdAt,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Outcome   Outcome `json:"outcome"`
	CreatedAt int64   `json:"createdAt"`
}
