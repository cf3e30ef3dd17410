// Package driver supplies wall-clock advance delivery for timers.
package driver

import (
	"sync"
	"time"
)

// DefaultResolution is the delivery rate used when none is given.
const DefaultResolution = 100 * time.Millisecond

// Advancer consumes measured time deltas. *timer.Timer satisfies it.
type Advancer interface {
	Advance(time.Duration)
}

// Ticker delivers wall-clock advances to a target at a fixed
// resolution. Each delivery carries the measured time since the
// previous delivery, so the target sees real elapsed time even when
// the underlying ticker jitters. Time spent paused is not delivered.
//
// Delivery happens on the Ticker's own goroutine; the target's
// callbacks run inline there.
type Ticker struct {
	mu         sync.Mutex
	target     Advancer
	resolution time.Duration
	paused     bool
	last       time.Time
	stopCh     chan struct{}
	done       chan struct{}
	started    bool
	cancelled  bool
}

// NewTicker creates a paused Ticker; Resume begins delivery.
func NewTicker(target Advancer, resolution time.Duration) *Ticker {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Ticker{
		target:     target,
		resolution: resolution,
		paused:     true,
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Resume starts or unpauses delivery. Resuming a cancelled Ticker is a
// no-op.
func (ticker *Ticker) Resume() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.cancelled {
		return
	}
	ticker.paused = false
	ticker.last = time.Now()
	if !ticker.started {
		ticker.started = true
		go ticker.run()
	}
}

// Pause suspends delivery without terminating the delivery goroutine.
func (ticker *Ticker) Pause() {
	ticker.mu.Lock()
	ticker.paused = true
	ticker.mu.Unlock()
}

// Cancel terminates delivery permanently and waits for any in-flight
// delivery to complete, so no advance can arrive after Cancel returns.
// It is safe to call more than once, but must not be called from the
// delivery goroutine itself.
func (ticker *Ticker) Cancel() {
	ticker.mu.Lock()
	if ticker.cancelled {
		ticker.mu.Unlock()
		return
	}
	ticker.cancelled = true
	started := ticker.started
	close(ticker.stopCh)
	ticker.mu.Unlock()

	if started {
		<-ticker.done
	}
}

func (ticker *Ticker) run() {
	defer close(ticker.done)
	tick := time.NewTicker(ticker.resolution)
	defer tick.Stop()

	for {
		select {
		case <-ticker.stopCh:
			return
		case now := <-tick.C:
			ticker.deliver(now)
		}
	}
}

func (ticker *Ticker) deliver(now time.Time) {
	ticker.mu.Lock()
	if ticker.paused || ticker.cancelled {
		ticker.mu.Unlock()
		return
	}
	delta := now.Sub(ticker.last)
	ticker.last = now
	ticker.mu.Unlock()

	ticker.target.Advance(delta)
}
