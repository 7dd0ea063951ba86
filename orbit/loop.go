package orbit

import (
	"sync"
	"time"

	"github.com/lixenwraith/orrery/frame"
)

// Scheduler is the host's per-frame callback primitive
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) frame.ID
	CancelFrame(id frame.ID)
}

// FrameFunc runs after each tick with the bodies that completed a revolution
// A non-nil error stops the loop
type FrameFunc func(now time.Time, completed []string) error

// Loop drives a Simulator from a Scheduler: tick, render hook, request next frame
// Stop cancels the pending request and prevents re-registration
type Loop struct {
	sim     *Simulator
	sched   Scheduler
	onFrame FrameFunc

	mu         sync.Mutex
	pending    frame.ID
	hasPending bool
	started    bool
	stopped    bool
	err        error
}

// NewLoop creates a stopped loop; onFrame may be nil
func NewLoop(sim *Simulator, sched Scheduler, onFrame FrameFunc) *Loop {
	return &Loop{
		sim:     sim,
		sched:   sched,
		onFrame: onFrame,
	}
}

// Start registers the first frame, no-op after Start or Stop
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started || l.stopped {
		return
	}
	l.started = true
	l.requestLocked()
}

// Stop cancels the pending frame, safe to call repeatedly and from within a frame
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}
	l.stopped = true
	if l.hasPending {
		l.sched.CancelFrame(l.pending)
		l.hasPending = false
	}
}

// Running reports whether frames are still being requested
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started && !l.stopped
}

// Err returns the error that stopped the loop, if any
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loop) requestLocked() {
	l.pending = l.sched.RequestFrame(l.step)
	l.hasPending = true
}

func (l *Loop) step(now time.Time) {
	l.mu.Lock()
	l.hasPending = false
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	completed := l.sim.Tick()

	var err error
	if l.onFrame != nil {
		err = l.onFrame(now, completed)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil && !l.stopped {
		l.err = err
		l.stopped = true
	}
	if l.stopped {
		return
	}
	l.requestLocked()
}
