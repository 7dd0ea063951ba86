package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerDispatchesUntilStopped(t *testing.T) {
	tk := NewTicker(time.Millisecond)

	var calls atomic.Int64
	var step func(time.Time)
	step = func(time.Time) {
		calls.Add(1)
		tk.RequestFrame(step)
	}
	tk.RequestFrame(step)

	tk.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	tk.Stop()

	if calls.Load() < 3 {
		t.Fatalf("calls = %d, want at least 3", calls.Load())
	}

	after := calls.Load()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("callbacks ran after Stop: %d -> %d", after, calls.Load())
	}

	// Stop is idempotent
	tk.Stop()
}

func TestTickerContextCancel(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	tk.Start(ctx)
	cancel()
	tk.Stop()
}
