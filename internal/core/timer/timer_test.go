package timer

import (
	"testing"
	"time"
)

// fakeClock lets tests pin the wall-clock instant a timer observes.
type fakeClock struct {
	current time.Time
}

func (clock *fakeClock) now() time.Time {
	return clock.current
}

func (clock *fakeClock) advance(delta time.Duration) {
	clock.current = clock.current.Add(delta)
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

// recordingObserver records notification order and fired events.
type recordingObserver struct {
	calls  []string
	events []Event
}

func (observer *recordingObserver) TimerDidStart(*Timer) {
	observer.calls = append(observer.calls, "didStart")
}

func (observer *recordingObserver) TimerDidStop(*Timer) {
	observer.calls = append(observer.calls, "didStop")
}

func (observer *recordingObserver) TimerDidReset(*Timer) {
	observer.calls = append(observer.calls, "didReset")
}

func (observer *recordingObserver) TimerTicked(event Event, _ *Timer) {
	observer.calls = append(observer.calls, "ticked")
	observer.events = append(observer.events, event)
}

func (observer *recordingObserver) TimerFinished(event Event, _ *Timer) {
	observer.calls = append(observer.calls, "finished")
	observer.events = append(observer.events, event)
}

// fakeDriver records delivery control calls.
type fakeDriver struct {
	resumes int
	pauses  int
	cancels int
}

func (driver *fakeDriver) Resume() { driver.resumes++ }
func (driver *fakeDriver) Pause()  { driver.pauses++ }
func (driver *fakeDriver) Cancel() { driver.cancels++ }

func mustNew(t *testing.T, variant Variant) *Timer {
	t.Helper()
	clock, err := New(variant)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return clock
}

func TestStartOnlyFromNewOrInactive(t *testing.T) {
	testCases := []struct {
		from State
		want bool
	}{
		{StateNew, true},
		{StateActive, false},
		{StateInactive, true},
		{StateFinished, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from), func(t *testing.T) {
			clock := mustNew(t, Basic{})
			clock.state = tc.from

			if got := clock.Start(); got != tc.want {
				t.Fatalf("Start() from %s = %v, want %v", tc.from, got, tc.want)
			}
			wantState := tc.from
			if tc.want {
				wantState = StateActive
			}
			if clock.State() != wantState {
				t.Errorf("state after Start = %s, want %s", clock.State(), wantState)
			}
		})
	}
}

func TestStopOnlyFromActive(t *testing.T) {
	testCases := []struct {
		from State
		want bool
	}{
		{StateNew, false},
		{StateActive, true},
		{StateInactive, false},
		{StateFinished, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from), func(t *testing.T) {
			clock := mustNew(t, Basic{})
			clock.state = tc.from

			if got := clock.Stop(); got != tc.want {
				t.Fatalf("Stop() from %s = %v, want %v", tc.from, got, tc.want)
			}
			wantState := tc.from
			if tc.want {
				wantState = StateInactive
			}
			if clock.State() != wantState {
				t.Errorf("state after Stop = %s, want %s", clock.State(), wantState)
			}
		})
	}
}

func TestResetAlwaysAllowed(t *testing.T) {
	// Reset is legal from every state, including New.
	for _, from := range []State{StateNew, StateActive, StateInactive, StateFinished} {
		t.Run(string(from), func(t *testing.T) {
			clock := mustNew(t, Basic{Interval: time.Second})
			clock.state = StateActive
			clock.Advance(2500 * time.Millisecond)
			clock.state = from

			if !clock.Reset() {
				t.Fatalf("Reset() from %s = false, want true", from)
			}
			if clock.State() != StateNew {
				t.Errorf("state after Reset = %s, want %s", clock.State(), StateNew)
			}
			if clock.Elapsed() != 0 || clock.SinceLastTick() != 0 || clock.SinceLastFinish() != 0 {
				t.Errorf("elapsed counters not cleared: %v %v %v",
					clock.Elapsed(), clock.SinceLastTick(), clock.SinceLastFinish())
			}
			if !clock.LastTick().IsZero() || !clock.LastFinish().IsZero() {
				t.Errorf("last-fire timestamps not cleared: %v %v",
					clock.LastTick(), clock.LastFinish())
			}
			if clock.TimesTicked() != 0 || clock.TimesFinished() != 0 {
				t.Errorf("fire counters not cleared: %d %d",
					clock.TimesTicked(), clock.TimesFinished())
			}
		})
	}
}

func TestStartTwiceIsIdempotent(t *testing.T) {
	clock := mustNew(t, Basic{})
	if !clock.Start() {
		t.Fatal("first Start() = false, want true")
	}
	if clock.Start() {
		t.Fatal("second Start() = true, want false")
	}
	if clock.State() != StateActive {
		t.Errorf("state = %s, want %s", clock.State(), StateActive)
	}
}

func TestResetKeepsConfiguration(t *testing.T) {
	fired := 0
	clock := mustNew(t, Basic{
		Interval: time.Second,
		OnTick:   func(Event) { fired++ },
	})
	clock.Start()
	clock.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("ticks before reset = %d, want 1", fired)
	}

	clock.Reset()
	if clock.Interval() != time.Second {
		t.Fatalf("interval after reset = %v, want %v", clock.Interval(), time.Second)
	}

	clock.Start()
	clock.Advance(time.Second)
	if fired != 2 {
		t.Errorf("ticks after reset = %d, want 2", fired)
	}
}

func TestTickFiring(t *testing.T) {
	var events []Event
	clock := mustNew(t, Basic{
		Interval: time.Second,
		OnTick:   func(event Event) { events = append(events, event) },
	})
	clock.Start()

	clock.Advance(400 * time.Millisecond)
	clock.Advance(400 * time.Millisecond)
	if len(events) != 0 {
		t.Fatalf("tick fired at %v elapsed", clock.Elapsed())
	}

	clock.Advance(400 * time.Millisecond)
	if len(events) != 1 {
		t.Fatalf("ticks = %d, want 1", len(events))
	}
	if events[0].Delta != 1200*time.Millisecond {
		t.Errorf("tick delta = %v, want 1.2s", events[0].Delta)
	}
	if events[0].Lifetime != 1200*time.Millisecond {
		t.Errorf("tick lifetime = %v, want 1.2s", events[0].Lifetime)
	}
	if events[0].Fired != 1 {
		t.Errorf("tick fired counter = %d, want 1", events[0].Fired)
	}
	if clock.SinceLastTick() != 0 {
		t.Errorf("sinceLastTick = %v, want 0", clock.SinceLastTick())
	}
	if clock.Elapsed() != 1200*time.Millisecond {
		t.Errorf("elapsed = %v, want 1.2s", clock.Elapsed())
	}
}

func TestFinishFiring(t *testing.T) {
	var events []Event
	clock := mustNew(t, Stopwatch{
		Timeout:   time.Second,
		OnTimeout: func(event Event) { events = append(events, event) },
	})
	clock.Start()
	clock.Advance(1500 * time.Millisecond)

	if len(events) != 1 {
		t.Fatalf("finishes = %d, want 1", len(events))
	}
	if events[0].Kind != KindFinish {
		t.Errorf("event kind = %s, want %s", events[0].Kind, KindFinish)
	}
	if events[0].Delta != 1500*time.Millisecond {
		t.Errorf("finish delta = %v, want 1.5s", events[0].Delta)
	}
	if clock.State() != StateFinished {
		t.Errorf("state = %s, want %s", clock.State(), StateFinished)
	}
	if clock.Start() {
		t.Error("Start() after finish = true, want false")
	}
}

func TestAutoFinishNotifiesStopThenFinish(t *testing.T) {
	observer := &recordingObserver{}
	clock := mustNew(t, Stopwatch{Timeout: time.Second})
	clock.SetObserver(observer)
	clock.Start()
	clock.Advance(time.Second)

	want := []string{"didStart", "didStop", "finished"}
	if len(observer.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", observer.calls, want)
	}
	for i, call := range want {
		if observer.calls[i] != call {
			t.Fatalf("calls = %v, want %v", observer.calls, want)
		}
	}
	if clock.State() != StateFinished {
		t.Errorf("state = %s, want %s", clock.State(), StateFinished)
	}
}

func TestDelayFiresFinishOnly(t *testing.T) {
	finishes := 0
	clock := mustNew(t, Delay{
		Delay:    5 * time.Second,
		OnFinish: func(Event) { finishes++ },
	})
	clock.Start()
	clock.Advance(5 * time.Second)

	if finishes != 1 {
		t.Fatalf("finish callbacks = %d, want 1", finishes)
	}
	// The tick decision fires in the same advance (interval == duration)
	// but no tick handler is configured, so only the counter moves.
	if clock.TimesTicked() != 1 {
		t.Errorf("timesTicked = %d, want 1", clock.TimesTicked())
	}
	if clock.TimesFinished() != 1 {
		t.Errorf("timesFinished = %d, want 1", clock.TimesFinished())
	}
	if clock.State() != StateFinished {
		t.Errorf("state = %s, want %s", clock.State(), StateFinished)
	}

	// Advance does not gate on state; suppressing delivery after a
	// finish is the driver's job, not the core's. A further advance
	// delivered anyway fires finish again.
	clock.Advance(5 * time.Second)
	if finishes != 2 {
		t.Errorf("finish callbacks after second advance = %d, want 2", finishes)
	}
	if clock.TimesFinished() != 2 {
		t.Errorf("timesFinished after second advance = %d, want 2", clock.TimesFinished())
	}
}

func TestAdvanceAfterFinishNotDeliveredByDriver(t *testing.T) {
	fake := &fakeDriver{}
	finishes := 0
	clock := mustNew(t, Delay{
		Delay:    5 * time.Second,
		OnFinish: func(Event) { finishes++ },
	})
	clock.SetDriver(fake)
	clock.Start()
	clock.Advance(5 * time.Second)

	// The auto-finish stopped the clock, so the driver was told to
	// pause and no further advances arrive on their own.
	if finishes != 1 {
		t.Fatalf("finishes = %d, want 1", finishes)
	}
	if fake.pauses != 1 {
		t.Errorf("driver pauses after auto-finish = %d, want 1", fake.pauses)
	}
	if fake.resumes != 1 {
		t.Errorf("driver resumes = %d, want 1", fake.resumes)
	}
}

func TestCountdownSequence(t *testing.T) {
	counts := 0
	finishes := 0
	clock := mustNew(t, Countdown{
		Count:    3 * time.Second,
		Interval: time.Second,
		OnCount:  func(Event) { counts++ },
		OnFinish: func(Event) { finishes++ },
	})
	clock.Start()

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
	}

	if counts != 3 {
		t.Errorf("counts = %d, want 3", counts)
	}
	if clock.TimesTicked() != 3 {
		t.Errorf("timesTicked = %d, want 3", clock.TimesTicked())
	}
	if finishes != 1 {
		t.Errorf("finishes = %d, want 1", finishes)
	}
	if clock.State() != StateFinished {
		t.Errorf("state = %s, want %s", clock.State(), StateFinished)
	}
}

func TestNegativeDeltaClamped(t *testing.T) {
	clock := mustNew(t, Basic{Interval: time.Second})
	clock.Start()
	clock.Advance(300 * time.Millisecond)
	clock.Advance(-time.Hour)

	if clock.Elapsed() != 300*time.Millisecond {
		t.Errorf("elapsed = %v, want 300ms", clock.Elapsed())
	}
	if clock.TimesTicked() != 0 {
		t.Errorf("timesTicked = %d, want 0", clock.TimesTicked())
	}
}

func TestStopPreservesElapsed(t *testing.T) {
	clock := mustNew(t, Basic{Interval: time.Minute})
	clock.Start()
	clock.Advance(10 * time.Second)
	clock.Stop()

	if clock.Elapsed() != 10*time.Second {
		t.Errorf("elapsed after stop = %v, want 10s", clock.Elapsed())
	}

	clock.Start()
	clock.Advance(5 * time.Second)
	if clock.Elapsed() != 15*time.Second {
		t.Errorf("elapsed after restart = %v, want 15s", clock.Elapsed())
	}
}

func TestDetachedObserverIsSkipped(t *testing.T) {
	observer := &recordingObserver{}
	ticks := 0
	clock := mustNew(t, Basic{
		Interval: time.Second,
		OnTick:   func(Event) { ticks++ },
	})
	clock.SetObserver(observer)
	clock.Start()
	clock.SetObserver(nil)
	clock.Advance(time.Second)

	if len(observer.events) != 0 {
		t.Errorf("detached observer saw %d events", len(observer.events))
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestDriverFollowsLifecycle(t *testing.T) {
	fake := &fakeDriver{}
	clock := mustNew(t, Basic{})
	clock.SetDriver(fake)

	clock.Start()
	if fake.resumes != 1 {
		t.Errorf("resumes after Start = %d, want 1", fake.resumes)
	}

	clock.Stop()
	if fake.pauses != 1 {
		t.Errorf("pauses after Stop = %d, want 1", fake.pauses)
	}

	clock.Start()
	clock.Reset()
	if fake.pauses != 2 {
		t.Errorf("pauses after Reset = %d, want 2", fake.pauses)
	}

	clock.Close()
	clock.Close()
	if fake.cancels != 1 {
		t.Errorf("cancels after double Close = %d, want 1", fake.cancels)
	}
}

func TestFinishPausesDriver(t *testing.T) {
	fake := &fakeDriver{}
	clock := mustNew(t, Stopwatch{Timeout: time.Second})
	clock.SetDriver(fake)
	clock.Start()
	clock.Advance(time.Second)

	if fake.pauses != 1 {
		t.Errorf("pauses after auto-finish = %d, want 1", fake.pauses)
	}
}

func TestEventTimestampsUseClock(t *testing.T) {
	fake := newFakeClock()
	observer := &recordingObserver{}
	clock := mustNew(t, Basic{Interval: time.Second})
	clock.now = fake.now
	clock.SetObserver(observer)
	clock.Start()

	fake.advance(time.Second)
	clock.Advance(time.Second)

	if len(observer.events) != 1 {
		t.Fatalf("events = %d, want 1", len(observer.events))
	}
	if !observer.events[0].At.Equal(fake.current) {
		t.Errorf("event at = %v, want %v", observer.events[0].At, fake.current)
	}
	if !clock.LastTick().Equal(fake.current) {
		t.Errorf("lastTick = %v, want %v", clock.LastTick(), fake.current)
	}
}

func TestCountersAreMonotonicAcrossStops(t *testing.T) {
	clock := mustNew(t, Basic{Interval: time.Second})
	clock.Start()

	seenTicks := 0
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		if clock.TimesTicked() < seenTicks {
			t.Fatalf("timesTicked decreased: %d -> %d", seenTicks, clock.TimesTicked())
		}
		seenTicks = clock.TimesTicked()
		clock.Stop()
		clock.Start()
	}
	if seenTicks != 5 {
		t.Errorf("timesTicked = %d, want 5", seenTicks)
	}
}
