package algo

// StateName names a machine state.
type StateName string

const (
	StateIdle        StateName = "idle"
	StateStep        StateName = "step"
	StateMatch       StateName = "match"
	StatePassthrough StateName = "passthrough"
	StateInPlace     StateName = "nonZeroInCorrectPosition"
	StateSwap        StateName = "swap"
	StateMark        StateName = "mark"
	StateNext        StateName = "next"
	StateDone        StateName = "done"
)

// Event is an input to the machine.
type Event string

const (
	EventStart       Event = "START"
	EventStep        Event = "STEP"
	EventIsZero      Event = "IS_ZERO"
	EventIsNonZero   Event = "IS_NON_ZERO"
	EventAcknowledge Event = "ACKNOWLEDGE_NO_CHANGE"
	EventSwap        Event = "SWAP"
	EventMark        Event = "MARK"
	EventNext        Event = "NEXT"
	EventReset       Event = "RESET"
)

// State is a sealed union: one struct per machine state, each carrying the
// run context it was entered with.
type State interface {
	Name() StateName
	Context() RunContext
	sealed()
}

// Idle waits for START.
type Idle struct{ Ctx RunContext }

// Step has selected List[Current] and waits for STEP.
type Step struct{ Ctx RunContext }

// Match tests List[Current] for zero.
type Match struct{ Ctx RunContext }

// Passthrough is transient: it resolves to Swap or InPlace on entry.
type Passthrough struct{ Ctx RunContext }

// InPlace holds a non-zero with no zeros behind it; nothing moves.
type InPlace struct{ Ctx RunContext }

// Swap holds a non-zero that must trade places with the last zero.
type Swap struct{ Ctx RunContext }

// Mark has recorded another zero.
type Mark struct{ Ctx RunContext }

// Next finishes the current index.
type Next struct{ Ctx RunContext }

// Done is reached when the scan runs past index 0. Only RESET leaves it.
type Done struct{ Ctx RunContext }

func (s Idle) Name() StateName        { return StateIdle }
func (s Step) Name() StateName        { return StateStep }
func (s Match) Name() StateName       { return StateMatch }
func (s Passthrough) Name() StateName { return StatePassthrough }
func (s InPlace) Name() StateName     { return StateInPlace }
func (s Swap) Name() StateName        { return StateSwap }
func (s Mark) Name() StateName        { return StateMark }
func (s Next) Name() StateName        { return StateNext }
func (s Done) Name() StateName        { return StateDone }

func (s Idle) Context() RunContext        { return s.Ctx.Clone() }
func (s Step) Context() RunContext        { return s.Ctx.Clone() }
func (s Match) Context() RunContext       { return s.Ctx.Clone() }
func (s Passthrough) Context() RunContext { return s.Ctx.Clone() }
func (s InPlace) Context() RunContext     { return s.Ctx.Clone() }
func (s Swap) Context() RunContext        { return s.Ctx.Clone() }
func (s Mark) Context() RunContext        { return s.Ctx.Clone() }
func (s Next) Context() RunContext        { return s.Ctx.Clone() }
func (s Done) Context() RunContext        { return s.Ctx.Clone() }

func (Idle) sealed()        {}
func (Step) sealed()        {}
func (Match) sealed()       {}
func (Passthrough) sealed() {}
func (InPlace) sealed()     {}
func (Swap) sealed()        {}
func (Mark) sealed()        {}
func (Next) sealed()        {}
func (Done) sealed()        {}

// Accepts lists the events a state declares handlers for. RESET is
// accepted everywhere.
func Accepts(name StateName) []Event {
	switch name {
	case StateIdle:
		return []Event{EventStart, EventReset}
	case StateStep:
		return []Event{EventStep, EventReset}
	case StateMatch:
		return []Event{EventIsZero, EventIsNonZero, EventReset}
	case StateInPlace:
		return []Event{EventAcknowledge, EventReset}
	case StateSwap:
		return []Event{EventSwap, EventReset}
	case StateMark:
		return []Event{EventMark, EventReset}
	case StateNext:
		return []Event{EventNext, EventReset}
	case StatePassthrough, StateDone:
		return []Event{EventReset}
	}
	return nil
}

// Initial returns the idle state of a run seeded by src.
func Initial(src Source) State {
	return Idle{Ctx: NewContext(src.Generate())}
}
