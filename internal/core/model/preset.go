package model

import "time"

// PresetKind names the timer variant a preset configures.
type PresetKind string

const (
	KindBasic     PresetKind = "basic"
	KindStopwatch PresetKind = "stopwatch"
	KindCountdown PresetKind = "countdown"
	KindCountUp   PresetKind = "countup"
	KindDelay     PresetKind = "delay"
)

// KnownKind reports whether kind names a presetable variant. Schedule
// timers are not presetable: their window is absolute wall-clock time.
func KnownKind(kind PresetKind) bool {
	switch kind {
	case KindBasic, KindStopwatch, KindCountdown, KindCountUp, KindDelay:
		return true
	}
	return false
}

// Preset is a named, persistable timer configuration. Fields that do
// not apply to the preset's kind are left zero.
type Preset struct {
	Name     string
	Kind     PresetKind
	Interval time.Duration
	Count    time.Duration
	Delay    time.Duration
	Timeout  time.Duration
}
