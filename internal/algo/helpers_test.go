package algo

import (
	"fmt"
	"testing"
)

func cells(nums ...int) []Cell {
	out := make([]Cell, len(nums))
	for i, n := range nums {
		out[i] = Cell{Number: n, Key: fmt.Sprintf("k%d", i)}
	}
	return out
}

func fixed(t *testing.T, nums ...int) *FixedSource {
	t.Helper()
	src, err := NewFixedSource(nums)
	if err != nil {
		t.Fatalf("fixed source: %v", err)
	}
	return src
}

// states returns one instance of every resting state over ctx.
func states(ctx RunContext) []State {
	return []State{
		Idle{Ctx: ctx}, Step{Ctx: ctx}, Match{Ctx: ctx}, InPlace{Ctx: ctx},
		Swap{Ctx: ctx}, Mark{Ctx: ctx}, Next{Ctx: ctx}, Done{Ctx: ctx},
	}
}

var allEvents = []Event{
	EventStart, EventStep, EventIsZero, EventIsNonZero, EventAcknowledge,
	EventSwap, EventMark, EventNext, EventReset,
}
