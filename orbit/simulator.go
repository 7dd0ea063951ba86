package orbit

import (
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Sink receives position updates, one per body per tick
type Sink interface {
	Emit(id string, pos vmath.Vec3F)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(id string, pos vmath.Vec3F)

func (f SinkFunc) Emit(id string, pos vmath.Vec3F) { f(id, pos) }

// Option configures a Simulator
type Option func(*Simulator) error

// WithIncrement overrides the shared per-tick phase numerator
func WithIncrement(increment float64) Option {
	return func(s *Simulator) error {
		if !(increment > 0) || math.IsInf(increment, 1) {
			return fmt.Errorf("%w: %v", ErrInvalidIncrement, increment)
		}
		s.increment = increment
		return nil
	}
}

// WithSink sets the position consumer
func WithSink(sink Sink) Option {
	return func(s *Simulator) error {
		s.sink = sink
		return nil
	}
}

// Simulator owns a set of bodies and advances them together
// Not safe for concurrent use; ticks are driven by a single scheduler
type Simulator struct {
	bodies    []Body
	index     map[string]int
	increment float64
	sink      Sink
	ticks     uint64
}

// New copies the bodies into a simulator, rejecting invalid orbits and duplicate IDs
func New(bodies []Body, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		bodies:    make([]Body, 0, len(bodies)),
		index:     make(map[string]int, len(bodies)),
		increment: constant.OrbitBaseIncrement,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	for _, b := range bodies {
		if err := b.Orbit.Validate(); err != nil {
			return nil, fmt.Errorf("body %q: %w", b.ID, err)
		}
		if step := b.AngularSpeed(s.increment); math.IsInf(step, 0) {
			return nil, fmt.Errorf("body %q: %w: step %v/%v overflows", b.ID, ErrInvalidOrbit, s.increment, b.Orbit.SemiMajor)
		}
		if _, ok := s.index[b.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBody, b.ID)
		}
		s.index[b.ID] = len(s.bodies)
		s.bodies = append(s.bodies, b)
	}

	return s, nil
}

// SetSink replaces the position consumer, nil disables emission
func (s *Simulator) SetSink(sink Sink) {
	s.sink = sink
}

// Increment returns the shared per-tick phase numerator
func (s *Simulator) Increment() float64 {
	return s.increment
}

// Tick advances every body once and emits its new position
// Returns IDs of bodies that completed a revolution during this tick
func (s *Simulator) Tick() []string {
	var completed []string

	for i := range s.bodies {
		b := &s.bodies[i]
		step := b.AngularSpeed(s.increment)
		if step == 0 {
			s.emit(b)
			continue
		}

		before := b.Revolutions()
		b.Angle += step
		if b.Revolutions() > before {
			completed = append(completed, b.ID)
		}
		s.emit(b)
	}

	s.ticks++
	return completed
}

// EmitAll pushes current positions without advancing, used for initial placement
func (s *Simulator) EmitAll() {
	for i := range s.bodies {
		s.emit(&s.bodies[i])
	}
}

func (s *Simulator) emit(b *Body) {
	if s.sink != nil {
		s.sink.Emit(b.ID, b.Position())
	}
}

// Ticks returns the count of ticks executed
func (s *Simulator) Ticks() uint64 {
	return s.ticks
}

// Len returns the body count
func (s *Simulator) Len() int {
	return len(s.bodies)
}

// Body returns a copy of the body with the given ID
func (s *Simulator) Body(id string) (Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return Body{}, false
	}
	return s.bodies[i], true
}

// Bodies returns a copy of all bodies in registration order
func (s *Simulator) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}
