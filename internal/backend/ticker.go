package backend

import (
	"context"
	"sync"
	"time"
)

// Event is one tick. It carries only the time it fired; the consumer decides
// whether a refresh is due.
type Event struct {
	At time.Time
}

// Ticker publishes a tick event at a fixed interval until stopped. It never
// touches model state.
type Ticker struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewTicker starts a ticker that fires every interval.
func NewTicker(interval time.Duration) *Ticker {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Ticker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		// One slot: a consumer that falls behind sees the latest tick, not a
		// backlog.
		events: make(chan Event, 1),
	}

	t.wg.Add(1)
	go t.run()

	go func() {
		t.wg.Wait()
		close(t.events)
	}()

	return t
}

// Events returns the tick channel. It is closed after Stop.
func (t *Ticker) Events() <-chan Event {
	return t.events
}

// Stop cancels the ticker.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the ticker goroutine has exited and the channel is
// closed.
func (t *Ticker) Wait() {
	t.wg.Wait()
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			t.publish(Event{At: now})
		}
	}
}

func (t *Ticker) publish(evt Event) {
	select {
	case t.events <- evt:
		return
	default:
	}
	// Replace the stale pending tick with the fresh one.
	select {
	case <-t.events:
	default:
	}
	select {
	case t.events <- evt:
	default:
	}
}
