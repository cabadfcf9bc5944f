package algo

import (
	"errors"

	"go.uber.org/zap"
)

// Record describes one accepted event.
type Record struct {
	Seq    int         `json:"seq"`
	Event  Event       `json:"event"`
	From   StateName   `json:"from"`
	Path   []StateName `json:"path"`
	Before RunContext  `json:"before"`
	After  RunContext  `json:"after"`
}

// To returns the state the record came to rest in.
func (r Record) To() StateName {
	if len(r.Path) == 0 {
		return r.From
	}
	return r.Path[len(r.Path)-1]
}

// Entered reports whether name appears anywhere on the record's path.
func (r Record) Entered(name StateName) bool {
	for _, p := range r.Path {
		if p == name {
			return true
		}
	}
	return false
}

// Observer is notified after every accepted event.
type Observer interface {
	OnTransition(r Record)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(r Record)

func (f ObserverFunc) OnTransition(r Record) { f(r) }

// Machine owns the state of one widget and the source that seeds its runs.
type Machine struct {
	src       Source
	state     State
	seq       int
	observers []Observer
	log       *zap.Logger
}

// New returns a machine in the idle state of a run seeded by src. A nil
// logger disables logging.
func New(src Source, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		src:       src,
		state:     Initial(src),
		observers: make([]Observer, 0),
		log:       log,
	}
}

func (m *Machine) AddObserver(o Observer) { m.observers = append(m.observers, o) }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Done reports whether the current run has finished.
func (m *Machine) Done() bool { return m.state.Name() == StateDone }

// Send processes ev to completion. Events the current state does not accept
// leave the machine untouched and return an error wrapping
// ErrUnhandledEvent.
func (m *Machine) Send(ev Event) (Record, error) {
	before := m.state
	next, path, err := Transition(before, ev, m.src)
	if err != nil {
		if errors.Is(err, ErrUnhandledEvent) {
			m.log.Debug("event ignored",
				zap.String("state", string(before.Name())),
				zap.String("event", string(ev)))
		}
		return Record{}, err
	}

	m.seq++
	m.state = next
	rec := Record{
		Seq:    m.seq,
		Event:  ev,
		From:   before.Name(),
		Path:   path,
		Before: before.Context(),
		After:  next.Context(),
	}

	if ev == EventReset {
		m.log.Info("run reset", zap.Ints("list", rec.After.Numbers()))
	} else {
		m.log.Debug("transition",
			zap.String("event", string(ev)),
			zap.String("from", string(rec.From)),
			zap.String("to", string(rec.To())),
			zap.Int("current", rec.After.Current),
			zap.Int("zeros", rec.After.Zeros),
			zap.Int("target", rec.After.Target))
	}

	for _, o := range m.observers {
		o.OnTransition(rec)
	}
	return rec, nil
}

// Advance sends the event the driver picks for the current state.
func (m *Machine) Advance() (Record, error) {
	ev, ok := NextEvent(m.state)
	if !ok {
		return Record{}, &TransitionError{State: m.state.Name(), Wrapped: ErrNoEvent}
	}
	return m.Send(ev)
}

// Reset starts a new run regardless of the current state.
func (m *Machine) Reset() Record {
	// every state accepts RESET, so Send cannot fail here
	rec, _ := m.Send(EventReset)
	return rec
}
