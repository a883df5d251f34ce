package engine

import (
	"context"
	"time"
)

// Clock is the time source used for frame pacing
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done
	Sleep(ctx context.Context, d time.Duration)
}

type realClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// pace blocks for what is left of interval since start
func pace(ctx context.Context, clock Clock, start time.Time, interval time.Duration) {
	if remaining := interval - clock.Now().Sub(start); remaining > 0 {
		clock.Sleep(ctx, remaining)
	}
}

// waitSlot blocks until interval has passed since *last, then marks the start
// of a new slot. A zero *last does not wait.
func waitSlot(ctx context.Context, clock Clock, last *time.Time, interval time.Duration) {
	if !last.IsZero() {
		pace(ctx, clock, *last, interval)
	}

	*last = clock.Now()
}
