// Package frame provides per-frame callback schedulers: a dispatch queue owned by a host loop
// and a ticker that drives a queue from its own goroutine
package frame

import (
	"sync"
	"time"
)

// ID identifies a pending frame request, zero is never issued
type ID uint64

// Queue is a requestAnimationFrame analog
// Callbacks requested during Dispatch run on the following Dispatch
type Queue struct {
	mu        sync.Mutex
	nextID    ID
	order     []ID
	callbacks map[ID]func(time.Time)
	frames    uint64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		order:     make([]ID, 0, 8),
		callbacks: make(map[ID]func(time.Time), 8),
	}
}

// RequestFrame schedules fn for the next dispatch
func (q *Queue) RequestFrame(fn func(now time.Time)) ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.order = append(q.order, id)
	q.callbacks[id] = fn
	return id
}

// CancelFrame drops a pending callback, unknown or already-run IDs are ignored
func (q *Queue) CancelFrame(id ID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.callbacks, id)
}

// Dispatch runs every callback pending when it was called, in request order
// Returns the number of callbacks executed
func (q *Queue) Dispatch(now time.Time) int {
	q.mu.Lock()
	batch := q.order
	q.order = make([]ID, 0, cap(batch))
	q.frames++
	q.mu.Unlock()

	ran := 0
	for _, id := range batch {
		// Re-check per callback: an earlier callback may cancel a later one
		q.mu.Lock()
		fn, ok := q.callbacks[id]
		delete(q.callbacks, id)
		q.mu.Unlock()

		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of live callbacks awaiting dispatch
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.callbacks)
}

// Frames returns the number of dispatches performed
func (q *Queue) Frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}
