// Package history records timer firings in a bounded journal.
package history

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"chrono/internal/core/timer"
)

// Journal retains the most recent timer events up to a fixed capacity;
// older firings are evicted as new ones arrive. It implements
// timer.Observer so it can be attached directly to a timer. Lifecycle
// notifications are counted but not stored.
type Journal struct {
	entries *lru.Cache[int, timer.Event]
	seq     int
	starts  int
	stops   int
	resets  int
}

// New creates a journal retaining at most capacity events.
func New(capacity int) (*Journal, error) {
	entries, err := lru.New[int, timer.Event](capacity)
	if err != nil {
		return nil, err
	}
	return &Journal{entries: entries}, nil
}

func (journal *Journal) TimerDidStart(*timer.Timer) { journal.starts++ }
func (journal *Journal) TimerDidStop(*timer.Timer)  { journal.stops++ }
func (journal *Journal) TimerDidReset(*timer.Timer) { journal.resets++ }

func (journal *Journal) TimerTicked(event timer.Event, _ *timer.Timer) {
	journal.record(event)
}

func (journal *Journal) TimerFinished(event timer.Event, _ *timer.Timer) {
	journal.record(event)
}

// Recent returns up to n retained events, oldest first. A non-positive
// n returns everything retained.
func (journal *Journal) Recent(n int) []timer.Event {
	keys := journal.entries.Keys()
	if n > 0 && len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	events := make([]timer.Event, 0, len(keys))
	for _, key := range keys {
		if event, ok := journal.entries.Peek(key); ok {
			events = append(events, event)
		}
	}
	return events
}

// Len reports the number of retained events.
func (journal *Journal) Len() int {
	return journal.entries.Len()
}

// CountKind reports how many retained events are of the given kind.
func (journal *Journal) CountKind(kind timer.EventKind) int {
	count := 0
	for _, key := range journal.entries.Keys() {
		if event, ok := journal.entries.Peek(key); ok && event.IsKind(kind) {
			count++
		}
	}
	return count
}

// Starts reports how many start notifications were observed.
func (journal *Journal) Starts() int { return journal.starts }

// Stops reports how many stop notifications were observed.
func (journal *Journal) Stops() int { return journal.stops }

// Resets reports how many reset notifications were observed.
func (journal *Journal) Resets() int { return journal.resets }

func (journal *Journal) record(event timer.Event) {
	journal.entries.Add(journal.seq, event)
	journal.seq++
}
