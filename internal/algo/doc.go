// Package algo models one in-place "shift zeros left" pass as an explicit
// finite-state machine.
//
// The package defines:
//
//   - [Cell] and [RunContext]: the array being partitioned and the scan scalars
//   - [Source]: list generators seeding a run ([RandomSource], [FixedSource])
//   - [State]: a sealed union with one type per machine state
//   - [Transition]: the single pure (state, event) -> state function
//   - [Machine]: owns the current state and notifies observers
//   - [NextEvent]: the driver picking the one event a state accepts next
//
// # Example
//
//	m := algo.New(algo.NewRandomSource(42), nil)
//	for !m.Done() {
//		if _, err := m.Advance(); err != nil {
//			return err
//		}
//	}
//
// # Thread Safety
//
// Machine instances are NOT thread-safe. The terminal UI drives a machine
// from its single update loop only.
package algo
