// Package timer implements a driver-agnostic timer engine. A Timer owns
// a small lifecycle state machine and per-advance elapsed-time
// accounting; an external driver feeds it measured time deltas and the
// timer decides when to emit tick and finish events.
package timer

import "time"

// Observer receives lifecycle and firing notifications from a timer.
// The timer holds the observer by plain reference and never requires
// one; every notification is skipped when the observer is absent.
type Observer interface {
	TimerDidStart(*Timer)
	TimerDidStop(*Timer)
	TimerDidReset(*Timer)
	TimerTicked(Event, *Timer)
	TimerFinished(Event, *Timer)
}

// Driver is the periodic advance source attached to a timer. The timer
// pauses and resumes delivery as its state changes and cancels the
// driver on Close; the driver owns the actual clock subscription.
type Driver interface {
	Resume()
	Pause()
	Cancel()
}

// Timer accumulates externally measured time deltas and fires tick and
// finish events against its configured interval and duration, or
// against custom predicates installed by a variant.
//
// A Timer performs no locking. Advance and the lifecycle operations
// must be invoked from a single goroutine; with an attached driver that
// is the driver's delivery goroutine once delivery has begun.
type Timer struct {
	state State

	interval time.Duration // 0 disables ticking
	duration time.Duration // 0 runs indefinitely

	elapsed     time.Duration
	sinceTick   time.Duration
	sinceFinish time.Duration

	lastTick   time.Time
	lastFinish time.Time

	ticks    int
	finishes int

	onTick   func(Event)
	onFinish func(Event)

	shouldTick   Predicate
	shouldFinish Predicate

	observer Observer
	driver   Driver

	now func() time.Time
}

// New constructs a Timer configured by the given variant. The variant
// is applied exactly once; a missing required field surfaces here, not
// on first advance.
func New(variant Variant) (*Timer, error) {
	timer := &Timer{
		state: StateNew,
		now:   time.Now,
	}
	if err := variant.apply(timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// SetObserver attaches an observer, replacing any previous one. Passing
// nil detaches.
func (timer *Timer) SetObserver(observer Observer) {
	timer.observer = observer
}

// SetDriver attaches the periodic advance source. The driver starts
// paused; Start resumes it.
func (timer *Timer) SetDriver(driver Driver) {
	timer.driver = driver
}

// State returns the current lifecycle state.
func (timer *Timer) State() State {
	return timer.state
}

// Interval returns the configured time between tick events; 0 means
// ticking is disabled.
func (timer *Timer) Interval() time.Duration {
	return timer.interval
}

// Duration returns the configured time until the finish event; 0 means
// the timer runs indefinitely.
func (timer *Timer) Duration() time.Duration {
	return timer.duration
}

// Elapsed returns total accumulated time. Only Reset clears it.
func (timer *Timer) Elapsed() time.Duration {
	return timer.elapsed
}

// SinceLastTick returns accumulated time since the last tick fired.
func (timer *Timer) SinceLastTick() time.Duration {
	return timer.sinceTick
}

// SinceLastFinish returns accumulated time since the last finish fired.
func (timer *Timer) SinceLastFinish() time.Duration {
	return timer.sinceFinish
}

// LastTick returns the wall-clock instant of the last tick, or the zero
// time if no tick has fired.
func (timer *Timer) LastTick() time.Time {
	return timer.lastTick
}

// LastFinish returns the wall-clock instant of the last finish, or the
// zero time if no finish has fired.
func (timer *Timer) LastFinish() time.Time {
	return timer.lastFinish
}

// TimesTicked returns how many tick events have fired since the last reset.
func (timer *Timer) TimesTicked() int {
	return timer.ticks
}

// TimesFinished returns how many finish events have fired since the last reset.
func (timer *Timer) TimesFinished() int {
	return timer.finishes
}

// Start activates the timer and resumes advance delivery. It reports
// whether the transition was legal; starting an Active or Finished
// timer is a no-op returning false.
func (timer *Timer) Start() bool {
	if !timer.state.CanStart() {
		return false
	}
	timer.state = StateActive
	if timer.driver != nil {
		timer.driver.Resume()
	}
	if timer.observer != nil {
		timer.observer.TimerDidStart(timer)
	}
	return true
}

// Stop deactivates the timer and pauses advance delivery. It reports
// whether the transition was legal. Stopping does not clear any
// accumulated time.
func (timer *Timer) Stop() bool {
	if !timer.state.CanStop() {
		return false
	}
	timer.state = StateInactive
	if timer.driver != nil {
		timer.driver.Pause()
	}
	if timer.observer != nil {
		timer.observer.TimerDidStop(timer)
	}
	return true
}

// Reset returns the timer to its initial state: all elapsed counters,
// fire counters and last-fire timestamps are cleared and delivery is
// paused. The configured interval, duration, callbacks and predicates
// persist. Reset is legal from every state.
func (timer *Timer) Reset() bool {
	if !timer.state.CanReset() {
		return false
	}
	timer.state = StateNew
	timer.elapsed = 0
	timer.sinceTick = 0
	timer.sinceFinish = 0
	timer.lastTick = time.Time{}
	timer.lastFinish = time.Time{}
	timer.ticks = 0
	timer.finishes = 0
	if timer.driver != nil {
		timer.driver.Pause()
	}
	if timer.observer != nil {
		timer.observer.TimerDidReset(timer)
	}
	return true
}

// Advance accumulates delta into the timer's counters and fires any due
// events. A negative delta is treated as zero. Advance does not consult
// the lifecycle state; the driver is responsible for suspending
// delivery while the timer is not Active.
//
// The tick and finish decisions are independent: both may fire within
// the same call when both conditions hold.
func (timer *Timer) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	timer.elapsed += delta
	timer.sinceTick += delta
	timer.sinceFinish += delta

	if timer.tickDue() {
		timer.fireTick()
	}
	if timer.finishDue() {
		timer.fireFinish()
	}
}

// Close cancels the attached driver's clock subscription. The timer
// must not be advanced afterwards. Close is safe to call more than
// once and without a driver.
func (timer *Timer) Close() {
	if timer.driver != nil {
		timer.driver.Cancel()
		timer.driver = nil
	}
}

func (timer *Timer) tickDue() bool {
	if timer.shouldTick != nil {
		return timer.shouldTick(timer)
	}
	return defaultShouldTick(timer)
}

func (timer *Timer) finishDue() bool {
	if timer.shouldFinish != nil {
		return timer.shouldFinish(timer)
	}
	return defaultShouldFinish(timer)
}

func (timer *Timer) fireTick() {
	timer.ticks++
	timer.lastTick = timer.now()
	event := Event{
		Kind:     KindTick,
		At:       timer.lastTick,
		Delta:    timer.sinceTick,
		Lifetime: timer.elapsed,
		Fired:    timer.ticks,
	}
	if timer.observer != nil {
		timer.observer.TimerTicked(event, timer)
	}
	if timer.onTick != nil {
		timer.onTick(event)
	}
	timer.sinceTick = 0
}

// fireFinish stops the clock first, then marks the timer Finished
// directly. Finished is reached programmatically, not through the
// public Start/Stop surface.
func (timer *Timer) fireFinish() {
	timer.Stop()
	timer.state = StateFinished
	timer.finishes++
	timer.lastFinish = timer.now()
	event := Event{
		Kind:     KindFinish,
		At:       timer.lastFinish,
		Delta:    timer.sinceFinish,
		Lifetime: timer.elapsed,
		Fired:    timer.finishes,
	}
	if timer.observer != nil {
		timer.observer.TimerFinished(event, timer)
	}
	if timer.onFinish != nil {
		timer.onFinish(event)
	}
	timer.sinceFinish = 0
}
