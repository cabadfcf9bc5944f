// Package autoplay provides the repeating tick that drives automated play.
//
// A Ticker is a scoped resource: Start acquires it and Stop releases it.
// The goroutine behind it also exits when the start context is canceled,
// so forgetting Stop on one exit path cannot leak it past the program.
package autoplay

import (
	"context"
	"sync"
	"time"
)

// DefaultPeriod is the pause between automated steps.
const DefaultPeriod = 2500 * time.Millisecond

// Ticker delivers ticks on C until stopped.
type Ticker struct {
	c      chan time.Time
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start begins ticking every period. Ticks are not buffered: a tick that
// nobody is receiving is dropped once the next one is due.
func Start(ctx context.Context, period time.Duration) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		c:      make(chan time.Time),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go t.loop(ctx, period)
	return t
}

func (t *Ticker) loop(ctx context.Context, period time.Duration) {
	defer close(t.done)
	defer close(t.c)

	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			select {
			case t.c <- now:
			case <-tk.C:
			case <-ctx.Done():
				return
			}
		}
	}
}

// C returns the tick channel. It is closed once the ticker stops.
func (t *Ticker) C() <-chan time.Time { return t.c }

// Stop releases the ticker and waits for its goroutine to exit. It is safe
// to call more than once and on a nil Ticker.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.once.Do(t.cancel)
	<-t.done
}

// Done returns a channel closed once the ticker has fully stopped.
func (t *Ticker) Done() <-chan struct{} { return t.done }
