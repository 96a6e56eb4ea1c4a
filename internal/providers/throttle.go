package providers

import (
	"context"
	"sync"
	"time"
)

const defaultThrottleInterval = 100 * time.Millisecond

// Throttle enforces a minimum spacing between outbound upstream calls.
// Concurrent waiters reserve successive slots under the mutex, so no two
// callers can compute the same gap and both proceed early; the sleep itself
// happens outside the lock.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error
}

// NewThrottle returns a Throttle with the given minimum interval. Intervals
// <= 0 fall back to the default.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = defaultThrottleInterval
	}
	return &Throttle{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Wait blocks until the caller's reserved slot arrives. It returns early only
// when the context is canceled.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	now := t.now()
	var delay time.Duration
	if next := t.last.Add(t.interval); now.Before(next) {
		delay = next.Sub(now)
		t.last = next
	} else {
		t.last = now
	}
	t.mu.Unlock()

	if delay <= 0 {
		return ctx.Err()
	}
	return t.sleep(ctx, delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
