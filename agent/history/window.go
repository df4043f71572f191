// Package history keeps the rolling conversation buffer for one assistant
// instance. History is session-lifetime only and never shared across sessions.
package history

import (
	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

const DefaultMaxExchanges = 20

// Window is a sliding buffer bounded to the most recent N user/assistant
// exchanges; oldest exchanges are evicted first.
type Window struct {
	maxExchanges int
	turns        []contractx.Turn
}

func NewWindow(maxExchanges int) *Window {
	if maxExchanges <= 0 {
		maxExchanges = DefaultMaxExchanges
	}
	return &Window{maxExchanges: maxExchanges}
}

// AppendExchange records one user/assistant pair and trims the buffer.
func (w *Window) AppendExchange(userText, assistantText string) {
	w.turns = append(w.turns,
		contractx.Turn{Role: contractx.RoleUser, Text: userText},
		contractx.Turn{Role: contractx.RoleAssistant, Text: assistantText},
	)

	maxTurns := w.maxExchanges * 2
	if len(w.turns) > maxTurns {
		w.turns = w.turns[len(w.turns)-maxTurns:]
	}
}

// Turns returns a copy of the buffered turns in order.
func (w *Window) Turns() []contractx.Turn {
	out := make([]contractx.Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// Reset clears the buffer.
func (w *Window) Reset() {
	w.turns = nil
}

// Len returns the number of buffered turns.
func (w *Window) Len() int {
	return len(w.turns)
}
