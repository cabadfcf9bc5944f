package algo

import "fmt"

// Transition applies ev to s and runs every automatic transition that
// follows, so the returned state always accepts the next event. The path
// lists each state entered, in order; its last element is the returned
// state. src regenerates the list on RESET.
//
// An event s does not accept returns s unchanged together with an error
// wrapping ErrUnhandledEvent.
func Transition(s State, ev Event, src Source) (State, []StateName, error) {
	if ev == EventReset {
		return Initial(src), []StateName{StateIdle}, nil
	}

	ctx := s.Context()
	switch s.(type) {
	case Idle:
		if ev == EventStart {
			return enterStep(ctx)
		}
	case Step:
		if ev == EventStep {
			return Match{Ctx: ctx}, []StateName{StateMatch}, nil
		}
	case Match:
		zero, ok := ctx.currentIsZero()
		switch {
		case ev == EventIsZero && ok && zero:
			ctx.findTarget()
			return enterMark(ctx)
		case ev == EventIsNonZero && ok && !zero:
			return enterPassthrough(ctx)
		}
	case InPlace:
		if ev == EventAcknowledge {
			return Next{Ctx: ctx}, []StateName{StateNext}, nil
		}
	case Swap:
		if ev == EventSwap {
			if err := swapCells(&ctx); err != nil {
				return s, nil, &TransitionError{State: s.Name(), Event: ev, Wrapped: err}
			}
			return Next{Ctx: ctx}, []StateName{StateNext}, nil
		}
	case Mark:
		if ev == EventMark {
			return Next{Ctx: ctx}, []StateName{StateNext}, nil
		}
	case Next:
		if ev == EventNext {
			return enterStep(ctx)
		}
	}
	return s, nil, &TransitionError{State: s.Name(), Event: ev, Wrapped: ErrUnhandledEvent}
}

// enterStep runs the step entry actions (select, find target) and then the
// done guard.
func enterStep(ctx RunContext) (State, []StateName, error) {
	ctx.Current--
	ctx.findTarget()
	if ctx.IsDone() {
		return Done{Ctx: ctx}, []StateName{StateStep, StateDone}, nil
	}
	return Step{Ctx: ctx}, []StateName{StateStep}, nil
}

// enterMark flags every zero at or after Current and counts one more zero.
func enterMark(ctx RunContext) (State, []StateName, error) {
	for i, cell := range ctx.List {
		if i < ctx.Current || cell.Number != 0 {
			continue
		}
		ctx.List[i].MarkedAsZero = true
	}
	ctx.Zeros++
	return Mark{Ctx: ctx}, []StateName{StateMark}, nil
}

func enterPassthrough(ctx RunContext) (State, []StateName, error) {
	if ctx.Zeros != 0 {
		return Swap{Ctx: ctx}, []StateName{StatePassthrough, StateSwap}, nil
	}
	return InPlace{Ctx: ctx}, []StateName{StatePassthrough, StateInPlace}, nil
}

// swapCells exchanges List[Current] with List[Current+Zeros].
func swapCells(ctx *RunContext) error {
	l, r := ctx.Current, ctx.Current+ctx.Zeros
	if !ctx.inRange(l) || !ctx.inRange(r) {
		return fmt.Errorf("%w: swap %d<->%d", ErrUnhandledEvent, l, r)
	}
	ctx.List[l], ctx.List[r] = ctx.List[r], ctx.List[l]
	return nil
}
