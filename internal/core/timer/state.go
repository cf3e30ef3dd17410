package timer

// State represents the lifecycle phase of a Timer.
type State string

const (
	StateNew      State = "new"
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateFinished State = "finished"
)

// CanStart reports whether Start is a legal transition from this state.
func (state State) CanStart() bool {
	return state == StateNew || state == StateInactive
}

// CanStop reports whether Stop is a legal transition from this state.
func (state State) CanStop() bool {
	return state == StateActive
}

// CanReset reports whether Reset is a legal transition from this state.
// Reset is allowed from every state, including New.
func (state State) CanReset() bool {
	return true
}
