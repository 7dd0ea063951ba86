// Package orbit advances celestial bodies along fixed elliptical orbits, one tick per animation frame
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

var (
	ErrInvalidOrbit     = errors.New("invalid orbit")
	ErrInvalidIncrement = errors.New("invalid base increment")
	ErrDuplicateBody    = errors.New("duplicate body id")
)

// Orbit is an ellipse centered at the origin in the XZ plane
// A zero SemiMajor marks a stationary body (the central star)
type Orbit struct {
	SemiMajor float64
	SemiMinor float64
}

// Stationary reports whether the orbit has no extent
func (o Orbit) Stationary() bool {
	return o.SemiMajor == 0
}

// Validate rejects orbits that cannot produce a position
// Axes are never negative, even for a stationary body
func (o Orbit) Validate() error {
	if !finite(o.SemiMajor) || !finite(o.SemiMinor) || o.SemiMajor < 0 || o.SemiMinor < 0 {
		return fmt.Errorf("%w: semi-major %v, semi-minor %v", ErrInvalidOrbit, o.SemiMajor, o.SemiMinor)
	}
	if o.Stationary() {
		return nil
	}
	if o.SemiMajor < constant.OrbitMinSemiMajor || o.SemiMinor == 0 {
		return fmt.Errorf("%w: semi-major %v, semi-minor %v", ErrInvalidOrbit, o.SemiMajor, o.SemiMinor)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PositionAt returns the point on the orbit at phase angle
func (o Orbit) PositionAt(angle float64) vmath.Vec3F {
	if o.Stationary() {
		return vmath.Vec3F{}
	}
	return vmath.EllipsePoint(o.SemiMajor, o.SemiMinor, angle)
}

// Body is a celestial body with a fixed orbit and a mutable phase angle
type Body struct {
	ID     string
	Radius float64 // visual size, unrelated to the orbit
	Color  string  // display color as #rrggbb
	Orbit  Orbit
	Angle  float64 // phase in radians, never wrapped
}

// AngularSpeed returns the per-tick phase step for the given base increment
// Larger orbits advance more slowly; stationary bodies do not advance
func (b *Body) AngularSpeed(increment float64) float64 {
	if b.Orbit.Stationary() {
		return 0
	}
	return increment / b.Orbit.SemiMajor
}

// Position derives the body's current position from its angle and orbit
func (b *Body) Position() vmath.Vec3F {
	return b.Orbit.PositionAt(b.Angle)
}

// Revolutions returns the count of completed revolutions
func (b *Body) Revolutions() int {
	return int(math.Floor(b.Angle / (2 * math.Pi)))
}
