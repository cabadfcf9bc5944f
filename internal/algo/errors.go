package algo

import (
	"errors"
	"fmt"
)

// Domain errors for machine operations.
var (
	// ErrUnhandledEvent indicates an event the current state does not accept,
	// or one whose guard rejected it. The state is left untouched.
	ErrUnhandledEvent = errors.New("algo: event not handled in current state")

	// ErrNoEvent indicates the driver has no event for the current state.
	ErrNoEvent = errors.New("algo: no event for current state")

	// ErrListLength indicates a seed list that does not hold ListLen numbers.
	ErrListLength = errors.New("algo: list must hold exactly 8 numbers")
)

// TransitionError wraps an error with the state and event that caused it.
type TransitionError struct {
	State   StateName
	Event   Event
	Wrapped error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s in %s: %v", e.Event, e.State, e.Wrapped)
}

func (e *TransitionError) Unwrap() error {
	return e.Wrapped
}
