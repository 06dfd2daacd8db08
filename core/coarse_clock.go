package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCoarseInterval is the refresh period used when NewCoarseClock
// is given a non-positive interval.
const DefaultCoarseInterval = 500 * time.Microsecond

// CoarseClock caches the monotonic instant and refreshes it from a
// background goroutine. Now is a single atomic load, at the cost of up
// to one interval of staleness.
type CoarseClock struct {
	origin   time.Time
	now      atomic.Int64 // nanoseconds since origin
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCoarseClock starts a coarse clock refreshed every interval. The
// goroutine runs until Stop is called.
func NewCoarseClock(interval time.Duration) *CoarseClock {
	if interval <= 0 {
		interval = DefaultCoarseInterval
	}
	c := &CoarseClock{
		origin: time.Now(),
		stop:   make(chan struct{}),
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.now.Store(int64(time.Since(c.origin)))
			case <-c.stop:
				return
			}
		}
	}()
	return c
}

// Now returns the most recently cached instant
func (c *CoarseClock) Now() Instant {
	return InstantOf(time.Duration(c.now.Load()))
}

// Elapsed returns the time between since and Now
func (c *CoarseClock) Elapsed(since Instant) time.Duration {
	return c.Now().Sub(since)
}

// Stop halts the refresh goroutine. It is safe to call more than once.
func (c *CoarseClock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}
