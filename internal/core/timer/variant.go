package timer

import (
	"errors"
	"fmt"
	"time"
)

// DefaultInterval is used by variants whose tick interval is optional.
const DefaultInterval = time.Second

var (
	// ErrMissingHandler indicates a variant requires an event handler
	// that was not supplied.
	ErrMissingHandler = errors.New("missing event handler")
	// ErrMissingFrequency indicates a schedule variant was built without
	// a frequency function.
	ErrMissingFrequency = errors.New("missing frequency function")
	// ErrInvalidDuration indicates a required duration was zero or negative.
	ErrInvalidDuration = errors.New("invalid duration")
)

// Variant is a one-shot timer configuration: a pure data record whose
// apply runs once, at construction, to set the interval, duration,
// callbacks and custom predicates on a fresh Timer.
type Variant interface {
	apply(*Timer) error
}

// Basic fires OnTick every Interval, indefinitely.
type Basic struct {
	Interval time.Duration // defaults to DefaultInterval
	OnTick   func(Event)
	OnFinish func(Event)
}

func (variant Basic) apply(timer *Timer) error {
	interval := variant.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	timer.interval = interval
	timer.onTick = variant.OnTick
	timer.onFinish = variant.OnFinish
	return nil
}

// Stopwatch accumulates time without ticking. With a positive Timeout it
// fires OnTimeout once the timeout elapses; otherwise it runs until
// stopped.
type Stopwatch struct {
	Timeout   time.Duration // 0 runs until stopped
	OnTimeout func(Event)
}

func (variant Stopwatch) apply(timer *Timer) error {
	if variant.Timeout < 0 {
		return fmt.Errorf("stopwatch timeout: %w", ErrInvalidDuration)
	}
	timer.duration = variant.Timeout
	timer.onFinish = variant.OnTimeout
	return nil
}

// Countdown fires OnCount every Interval until Count has elapsed, then
// fires OnFinish. The caller presents the count direction; the
// accounting is identical to CountUp.
type Countdown struct {
	Count    time.Duration
	Interval time.Duration // defaults to DefaultInterval
	OnCount  func(Event)
	OnFinish func(Event)
}

func (variant Countdown) apply(timer *Timer) error {
	return applyCount(timer, "countdown", variant.Count, variant.Interval, variant.OnCount, variant.OnFinish)
}

// CountUp fires OnCount every Interval until Count has elapsed, then
// fires OnFinish.
type CountUp struct {
	Count    time.Duration
	Interval time.Duration // defaults to DefaultInterval
	OnCount  func(Event)
	OnFinish func(Event)
}

func (variant CountUp) apply(timer *Timer) error {
	return applyCount(timer, "countup", variant.Count, variant.Interval, variant.OnCount, variant.OnFinish)
}

func applyCount(timer *Timer, name string, count, interval time.Duration, onCount, onFinish func(Event)) error {
	if count <= 0 {
		return fmt.Errorf("%s count: %w", name, ErrInvalidDuration)
	}
	if onCount == nil {
		return fmt.Errorf("%s count handler: %w", name, ErrMissingHandler)
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	timer.interval = interval
	timer.duration = count
	timer.onTick = onCount
	timer.onFinish = onFinish
	return nil
}

// Delay fires OnFinish once after Delay has elapsed. Interval and
// duration are both set to the delay; the tick has no handler, so only
// the finish is observable through callbacks.
type Delay struct {
	Delay    time.Duration
	OnFinish func(Event)
}

func (variant Delay) apply(timer *Timer) error {
	if variant.Delay <= 0 {
		return fmt.Errorf("delay: %w", ErrInvalidDuration)
	}
	if variant.OnFinish == nil {
		return fmt.Errorf("delay finish handler: %w", ErrMissingHandler)
	}
	timer.interval = variant.Delay
	timer.duration = variant.Delay
	timer.onFinish = variant.OnFinish
	return nil
}

// Schedule fires OnSchedule whenever Frequency allows within the
// [Start, End) window and OnFinish once End is reached. Both decisions
// are wall-clock based; the elapsed-time counters are not consulted.
type Schedule struct {
	Start      time.Time
	End        time.Time
	Frequency  FrequencyFunc
	OnSchedule func(Event)
	OnFinish   func(Event)
}

func (variant Schedule) apply(timer *Timer) error {
	if variant.OnSchedule == nil {
		return fmt.Errorf("schedule handler: %w", ErrMissingHandler)
	}
	if variant.Frequency == nil {
		return fmt.Errorf("schedule: %w", ErrMissingFrequency)
	}
	timer.onTick = variant.OnSchedule
	timer.onFinish = variant.OnFinish
	timer.shouldTick = scheduleShouldTick(variant.Start, variant.End, variant.Frequency)
	timer.shouldFinish = scheduleShouldFinish(variant.End)
	return nil
}
