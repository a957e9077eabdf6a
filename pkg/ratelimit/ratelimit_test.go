package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestFixedDelay_ZeroIsImmediate(t *testing.T) {
	limiter := NewFixedDelay(0)

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("zero delay took %v", elapsed)
	}
}

func TestFixedDelay_WaitsFullDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	limiter := NewFixedDelay(delay)

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Wait() returned after %v, want at least %v", elapsed, delay)
	}
}

func TestFixedDelay_CancelledContext(t *testing.T) {
	limiter := NewFixedDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx)
	if err != context.Canceled {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}
