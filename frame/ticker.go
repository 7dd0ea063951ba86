package frame

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orrery/core"
)

// Ticker dispatches a Queue at a fixed interval from its own goroutine
// Callbacks run sequentially, never concurrently with each other
type Ticker struct {
	queue    *Queue
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		queue:    NewQueue(),
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (t *Ticker) RequestFrame(fn func(now time.Time)) ID {
	return t.queue.RequestFrame(fn)
}

func (t *Ticker) CancelFrame(id ID) {
	t.queue.CancelFrame(id)
}

// Frames returns the number of dispatches performed
func (t *Ticker) Frames() uint64 {
	return t.queue.Frames()
}

// Start begins dispatching until ctx is done or Stop is called
func (t *Ticker) Start(ctx context.Context) {
	if t.running.CompareAndSwap(false, true) {
		t.wg.Add(1)
		core.Go(func() { t.loop(ctx) })
	}
}

// Stop halts dispatching and waits for an in-flight frame to finish
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()
	t.running.Store(false)
}

// Done is closed once Stop has been called
func (t *Ticker) Done() <-chan struct{} {
	return t.stopChan
}

func (t *Ticker) loop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopChan:
			return
		case now := <-ticker.C:
			t.queue.Dispatch(now)
		}
	}
}
