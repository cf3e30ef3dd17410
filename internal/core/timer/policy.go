package timer

import "time"

// Predicate decides whether a timer should fire. A custom predicate
// installed on a Timer replaces the default interval or duration
// comparison for that decision.
type Predicate func(*Timer) bool

// FrequencyFunc decides whether a scheduled timer fires at the given
// moment within its window.
type FrequencyFunc func(current, start, end time.Time) bool

func defaultShouldTick(timer *Timer) bool {
	return timer.interval > 0 && timer.sinceTick >= timer.interval
}

func defaultShouldFinish(timer *Timer) bool {
	return timer.duration > 0 && timer.sinceFinish >= timer.duration
}

// scheduleShouldTick fires only inside the [start, end) window, and there
// only when the frequency function agrees. It consults wall-clock time,
// not the timer's elapsed counters.
func scheduleShouldTick(start, end time.Time, frequency FrequencyFunc) Predicate {
	return func(timer *Timer) bool {
		current := timer.now()
		if current.Before(start) {
			return false
		}
		if !current.Before(end) {
			return false
		}
		return frequency(current, start, end)
	}
}

// scheduleShouldFinish fires once the end of the window is reached.
func scheduleShouldFinish(end time.Time) Predicate {
	return func(timer *Timer) bool {
		return !timer.now().Before(end)
	}
}
