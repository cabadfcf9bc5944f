// Package present derives everything the screen shows from the machine state.
// It holds no logic beyond table lookups and index comparisons.
package present

import (
	"fmt"

	"github.com/san-kum/shiftzeros/internal/algo"
)

// CellKind is the visual category of a grid cell.
type CellKind string

const (
	KindComplete CellKind = "complete"
	KindCurrent  CellKind = "current"
	KindTarget   CellKind = "target"
	KindDefault  CellKind = "default"
)

// Arrow is a pointer above or below the grid.
type Arrow struct {
	Visible  bool
	Position int
}

// CellView is one rendered grid cell.
type CellView struct {
	Number int
	Key    string
	Kind   CellKind
	Marked bool
}

// ViewModel is the full derived view of one machine state.
type ViewModel struct {
	State        algo.StateName
	CurrentArrow Arrow
	TargetArrow  Arrow
	Cells        []CellView
	Caption      string
	Highlighted  []int
}

var highlights = map[algo.StateName][]int{
	algo.StateStep:    {13},
	algo.StateMatch:   {14},
	algo.StateMark:    {15},
	algo.StateInPlace: {19},
	algo.StateNext:    {20},
	algo.StateSwap:    {0, 1, 2, 3, 4, 5, 6, 7, 17},
	algo.StateDone:    {},
}

var captions = map[algo.StateName]string{
	algo.StateIdle:    "Lets get this sorted.",
	algo.StateStep:    "Let's take a look at current value.",
	algo.StateMatch:   "Is this 0?",
	algo.StateInPlace: "Nope, not a zero. It is in the right position. Let it be.",
	algo.StateNext:    "We are done with this one. Lets move on.",
	algo.StateSwap:    "Nope, not a zero. It is out of place, let's swap this with the last zero.",
	algo.StateDone:    "Awesome! The list is now in the right order.",
}

// Present maps a machine state to its view.
func Present(s algo.State) ViewModel {
	ctx := s.Context()
	done := ctx.IsDone()

	vm := ViewModel{
		State: s.Name(),
		CurrentArrow: Arrow{
			Visible:  !(done || ctx.Current >= algo.ListLen),
			Position: ctx.Current,
		},
		TargetArrow: Arrow{
			Visible:  ctx.Zeros > 0 && !done,
			Position: ctx.Target,
		},
		Cells:       make([]CellView, len(ctx.List)),
		Caption:     Caption(s.Name(), ctx.Zeros),
		Highlighted: HighlightedLines(s.Name()),
	}

	for i, c := range ctx.List {
		vm.Cells[i] = CellView{
			Number: c.Number,
			Key:    c.Key,
			Kind:   kind(i, ctx),
			Marked: c.MarkedAsZero && !done && i != ctx.Target && i != ctx.Current,
		}
	}
	return vm
}

func kind(i int, ctx algo.RunContext) CellKind {
	switch {
	case ctx.IsDone():
		return KindComplete
	case i == ctx.Current:
		return KindCurrent
	case i == ctx.Target:
		return KindTarget
	}
	return KindDefault
}

// Caption returns the caption for a state; mark also reports the zero run.
func Caption(name algo.StateName, zeros int) string {
	if name == algo.StateMark {
		plural := "s"
		if zeros == 1 {
			plural = ""
		}
		return fmt.Sprintf("Yep, it's a zero. Mark it. We now have %d zero%s in a row.", zeros, plural)
	}
	return captions[name]
}

// HighlightedLines returns the Source line indices to emphasize for a
// state. The result is a copy the caller may modify.
func HighlightedLines(name algo.StateName) []int {
	lines := highlights[name]
	out := make([]int, len(lines))
	copy(out, lines)
	return out
}

// IsHighlighted reports whether line is emphasized in vm.
func (vm ViewModel) IsHighlighted(line int) bool {
	for _, l := range vm.Highlighted {
		if l == line {
			return true
		}
	}
	return false
}
