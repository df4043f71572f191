package history

import (
	"fmt"
	"testing"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

func TestWindowAppendAndOrder(t *testing.T) {
	t.Parallel()

	w := NewWindow(20)
	w.AppendExchange("hi", "hello!")
	w.AppendExchange("how much to surabaya?", "which origin?")

	turns := w.Turns()
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}
	if turns[0].Role != contractx.RoleUser || turns[0].Text != "hi" {
		t.Fatalf("unexpected first turn: %+v", turns[0])
	}
	if turns[3].Role != contractx.RoleAssistant || turns[3].Text != "which origin?" {
		t.Fatalf("unexpected last turn: %+v", turns[3])
	}
}

func TestWindowEvictsOldestExchanges(t *testing.T) {
	t.Parallel()

	w := NewWindow(3)
	for i := 0; i < 5; i++ {
		w.AppendExchange(fmt.Sprintf("user %d", i), fmt.Sprintf("assistant %d", i))
	}

	turns := w.Turns()
	if len(turns) != 6 {
		t.Fatalf("expected 6 turns (3 exchanges), got %d", len(turns))
	}
	if turns[0].Text != "user 2" {
		t.Fatalf("oldest kept turn should be 'user 2', got %q", turns[0].Text)
	}
	if turns[5].Text != "assistant 4" {
		t.Fatalf("newest turn should be 'assistant 4', got %q", turns[5].Text)
	}
}

func TestWindowReset(t *testing.T) {
	t.Parallel()

	w := NewWindow(2)
	w.AppendExchange("a", "b")
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("expected empty window after reset, got %d turns", w.Len())
	}
}

func TestWindowTurnsReturnsCopy(t *testing.T) {
	t.Parallel()

	w := NewWindow(2)
	w.AppendExchange("a", "b")
	turns := w.Turns()
	turns[0].Text = "mutated"
	if w.Turns()[0].Text != "a" {
		t.Fatal("Turns() must return a copy")
	}
}
