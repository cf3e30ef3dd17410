package cli

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"chrono/internal/core/timer"
	"chrono/internal/driver"
	"chrono/internal/history"
	"chrono/internal/logger"
)

// Retained firings for the end-of-run summary.
const journalCapacity = 256

// runObserver logs firings as they happen, journals them, and signals
// the runner when the timer finishes.
type runObserver struct {
	log      *zerolog.Logger
	journal  *history.Journal
	finished chan struct{}
	once     sync.Once
}

func (observer *runObserver) TimerDidStart(*timer.Timer) {
	observer.log.Debug().Msg("timer started")
}

func (observer *runObserver) TimerDidStop(*timer.Timer) {
	observer.log.Debug().Msg("timer stopped")
}

func (observer *runObserver) TimerDidReset(*timer.Timer) {
	observer.log.Debug().Msg("timer reset")
}

func (observer *runObserver) TimerTicked(event timer.Event, clock *timer.Timer) {
	observer.journal.TimerTicked(event, clock)
	observer.log.Debug().
		Int("fired", event.Fired).
		Dur("delta", event.Delta).
		Dur("lifetime", event.Lifetime).
		Msg("tick")
}

func (observer *runObserver) TimerFinished(event timer.Event, clock *timer.Timer) {
	observer.journal.TimerFinished(event, clock)
	observer.log.Info().
		Dur("lifetime", event.Lifetime).
		Msg("finished")
	observer.once.Do(func() { close(observer.finished) })
}

// runTimer builds a timer for the variant, drives it with a wall-clock
// ticker and blocks until the timer finishes, the optional limit
// elapses, or the process is interrupted.
func runTimer(variant timer.Variant, limit time.Duration) error {
	log := logger.Get()

	journal, err := history.New(journalCapacity)
	if err != nil {
		return err
	}

	observer := &runObserver{
		log:      log,
		journal:  journal,
		finished: make(chan struct{}),
	}

	clock, err := timer.New(variant)
	if err != nil {
		return err
	}
	clock.SetObserver(observer)
	clock.SetDriver(driver.NewTicker(clock, resolution))
	defer clock.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	var limitCh <-chan time.Time
	if limit > 0 {
		limitTimer := time.NewTimer(limit)
		defer limitTimer.Stop()
		limitCh = limitTimer.C
	}

	clock.Start()

	select {
	case <-observer.finished:
	case <-interrupt:
		log.Info().Msg("interrupted")
	case <-limitCh:
		log.Info().Msg("run limit reached")
	}

	// Cancel delivery before touching the timer from this goroutine.
	clock.Close()

	log.Info().
		Int("ticks", clock.TimesTicked()).
		Int("finishes", clock.TimesFinished()).
		Dur("elapsed", clock.Elapsed()).
		Msg("summary")
	for _, event := range journal.Recent(5) {
		log.Debug().
			Str("kind", string(event.Kind)).
			Time("at", event.At).
			Dur("lifetime", event.Lifetime).
			Msg("recent event")
	}
	return nil
}
