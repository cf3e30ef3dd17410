package timer

import "time"

// EventKind distinguishes tick events from finish events.
type EventKind string

const (
	KindTick   EventKind = "tick"
	KindFinish EventKind = "finish"
)

// Event is an immutable snapshot taken when a timer fires. Delta is the
// time elapsed since the previous event of the same kind, Lifetime the
// timer's total elapsed time at the moment of firing, and Fired the
// number of same-kind events fired so far, this one included.
type Event struct {
	Kind     EventKind
	At       time.Time
	Delta    time.Duration
	Lifetime time.Duration
	Fired    int
}

// IsKind reports whether the event is of the given kind.
func (event Event) IsKind(kind EventKind) bool {
	return event.Kind == kind
}

// Rate returns the average number of same-kind firings per second over
// the timer's lifetime, or 0 if no time has elapsed.
func (event Event) Rate() float64 {
	if event.Lifetime <= 0 {
		return 0
	}
	return float64(event.Fired) / event.Lifetime.Seconds()
}
