package domain

import "fmt"

// Status classifies the outcome of a grid mutation.
type Status int

const (
	StatusContinue Status = iota
	StatusFinished
	StatusConflict
	StatusInsoluble
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusFinished:
		return "finished"
	case StatusConflict:
		return "conflict"
	case StatusInsoluble:
		return "insoluble"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result couples a Status with the cell it concerns. Row and Col are only
// meaningful for Conflict and Insoluble. It is a plain value, not an error.
type Result struct {
	Status Status `json:"status"`
	Row    int    `json:"row,omitempty"`
	Col    int    `json:"col,omitempty"`
}

// Continue signals that work remains.
func Continue() Result { return Result{Status: StatusContinue} }

// Finished signals that every cell is fixed.
func Finished() Result { return Result{Status: StatusFinished} }

// Conflict signals an assignment the cell at (row, col) cannot hold.
func Conflict(row, col int) Result {
	return Result{Status: StatusConflict, Row: row, Col: col}
}

// Insoluble signals that (row, col) was left with no viable values.
func Insoluble(row, col int) Result {
	return Result{Status: StatusInsoluble, Row: row, Col: col}
}

func (r Result) String() string {
	switch r.Status {
	case StatusConflict, StatusInsoluble:
		return fmt.Sprintf("%s at row %d col %d", r.Status, r.Row, r.Col)
	default:
		return r.Status.String()
	}
}
