package engine

import (
	"context"
	"sync"
	"time"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces time.Now as the loop's time source.
func WithClock(clock Clock) LoopOption {
	return func(l *Loop) {
		l.now = clock
	}
}

// Loop invokes an update function once per display refresh with the
// elapsed seconds since the previous invocation. The host drives it by
// calling Tick, or by calling Run for a ticker-driven loop.
type Loop struct {
	update func(deltaSeconds float64)
	now    Clock
	last   time.Time
	ticks  int64

	done       chan struct{}
	cancelOnce sync.Once
}

// StartLoop schedules update. The first delta is measured from the moment
// StartLoop is called.
func StartLoop(update func(deltaSeconds float64), opts ...LoopOption) *Loop {
	l := &Loop{
		update: update,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.last = l.now()
	return l
}

// Tick runs one invocation of the update function. It returns false, and
// does nothing, once the loop has been cancelled.
func (l *Loop) Tick() bool {
	if l.Cancelled() {
		return false
	}

	t := l.now()
	dt := t.Sub(l.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	l.last = t
	l.ticks++

	l.update(dt)
	return true
}

// Ticks returns how many times the update function has run.
func (l *Loop) Ticks() int64 {
	return l.ticks
}

// Run ticks the loop at the given interval until ctx is done or the loop is
// cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case <-ticker.C:
			if !l.Tick() {
				return
			}
		}
	}
}

// Cancel stops all further invocations. An invocation already in progress
// completes. Safe to call more than once and from any goroutine.
func (l *Loop) Cancel() {
	l.cancelOnce.Do(func() {
		close(l.done)
	})
}

// Cancelled reports whether Cancel has been called.
func (l *Loop) Cancelled() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
