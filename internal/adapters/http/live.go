package httpadapter

import (
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/sudoku-deduce/internal/domain"
	"svw.info/sudoku-deduce/internal/puzzle"
)

// liveEvent frames one websocket message: either a step, an error, or the
// final report.
type liveEvent struct {
	Type   string              `json:"type"` // "step" | "report" | "error"
	Step   *domain.StepEvent   `json:"step,omitempty"`
	Report *domain.SolveReport `json:"report,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// handleSolveLive upgrades to a websocket, reads one solve request, and
// streams a step event per technique invocation followed by the report.
func (h *Handler) handleSolveLive(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var req solveReq
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(liveEvent{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	givens, err := puzzle.Parse(req.Puzzle)
	if err != nil {
		_ = conn.WriteJSON(liveEvent{Type: "error", Error: err.Error()})
		return
	}

	// Solve in its own goroutine; this one drains events onto the wire so
	// the engine never blocks on a slow client buffer indefinitely.
	events := make(chan domain.StepEvent, 64)
	type outcome struct {
		report domain.SolveReport
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		rep, err := h.UC.SolveObserved(r.Context(), givens, req.Techniques, func(ev domain.StepEvent) {
			events <- ev
		})
		close(events)
		done <- outcome{report: rep, err: err}
	}()

	for ev := range events {
		ev := ev
		if err := conn.WriteJSON(liveEvent{Type: "step", Step: &ev}); err != nil {
			h.Log.Warn("websocket write failed", "err", err)
			// Keep draining so the solve goroutine can finish.
			for range events {
			}
			<-done
			return
		}
	}
	out := <-done
	if out.err != nil {
		_ = conn.WriteJSON(liveEvent{Type: "error", Error: out.err.Error()})
		return
	}
	_ = conn.WriteJSON(liveEvent{Type: "report", Report: &out.report})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
