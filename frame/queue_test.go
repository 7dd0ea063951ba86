package frame

import (
	"testing"
	"time"
)

func TestQueueDispatchRunsPendingOnce(t *testing.T) {
	q := NewQueue()
	calls := 0
	q.RequestFrame(func(time.Time) { calls++ })
	q.RequestFrame(func(time.Time) { calls++ })

	if n := q.Dispatch(time.Now()); n != 2 {
		t.Errorf("Dispatch ran %d callbacks, want 2", n)
	}
	if n := q.Dispatch(time.Now()); n != 0 {
		t.Errorf("second Dispatch ran %d callbacks, want 0", n)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestQueueReRequestDefersToNextFrame(t *testing.T) {
	q := NewQueue()
	calls := 0
	var step func(time.Time)
	step = func(time.Time) {
		calls++
		q.RequestFrame(step)
	}
	q.RequestFrame(step)

	for i := 0; i < 5; i++ {
		q.Dispatch(time.Now())
	}
	if calls != 5 {
		t.Errorf("calls = %d, want one per dispatch (5)", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", q.Pending())
	}
}

func TestQueueCancel(t *testing.T) {
	tests := []struct {
		name string
		run  func(q *Queue) int
		want int
	}{
		{
			name: "cancel before dispatch",
			run: func(q *Queue) int {
				calls := 0
				id := q.RequestFrame(func(time.Time) { calls++ })
				q.CancelFrame(id)
				q.Dispatch(time.Now())
				return calls
			},
			want: 0,
		},
		{
			name: "cancel later callback from earlier one",
			run: func(q *Queue) int {
				calls := 0
				var second ID
				q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
				second = q.RequestFrame(func(time.Time) { calls++ })
				q.Dispatch(time.Now())
				return calls
			},
			want: 0,
		},
		{
			name: "cancel unknown id",
			run: func(q *Queue) int {
				calls := 0
				q.RequestFrame(func(time.Time) { calls++ })
				q.CancelFrame(999)
				q.Dispatch(time.Now())
				return calls
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(NewQueue()); got != tt.want {
				t.Errorf("calls = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQueueIDsUnique(t *testing.T) {
	q := NewQueue()
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := q.RequestFrame(func(time.Time) {})
		if id == 0 || seen[id] {
			t.Fatalf("duplicate or zero id %d", id)
		}
		seen[id] = true
	}
}
