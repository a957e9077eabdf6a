// Package ratelimit paces requests so a remote server is never hammered.
package ratelimit

import (
	"context"
	"time"
)

// Waiter blocks between requests. The fetch loop only depends on this
// interface, so the fixed delay can later be swapped for adaptive backoff.
type Waiter interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits the same duration every time.
type FixedDelay struct {
	delay time.Duration
}

func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay}
}

func (f *FixedDelay) Wait(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
