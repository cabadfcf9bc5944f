package algo

// NextEvent picks the single event that moves s forward. It is evaluated
// against the state passed in, so callers must pass the live state at the
// time of the call. It reports false for states with no outgoing event.
func NextEvent(s State) (Event, bool) {
	switch s.Name() {
	case StateIdle:
		return EventStart, true
	case StateStep:
		return EventStep, true
	case StateMatch:
		zero, ok := s.Context().currentIsZero()
		if !ok {
			return "", false
		}
		if zero {
			return EventIsZero, true
		}
		return EventIsNonZero, true
	case StateSwap:
		return EventSwap, true
	case StateNext:
		return EventNext, true
	case StateMark:
		return EventMark, true
	case StateInPlace:
		return EventAcknowledge, true
	case StateDone:
		return EventReset, true
	}
	return "", false
}
