package constant

import "time"

// Frame Loop Timing
const (
	// MaxFrameDelta caps the simulated step after a stall (resize, suspend)
	MaxFrameDelta = 100 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256
)

// Orbit Simulation
const (
	// OrbitBaseIncrement is the shared numerator of every body's per-tick phase step
	// Angular step per tick = OrbitBaseIncrement / semi-major axis
	OrbitBaseIncrement = 0.01

	// OrbitMinSemiMajor is the smallest non-zero semi-major axis accepted
	OrbitMinSemiMajor = 1e-6

	// OrbitCurveSegments is the sample count of an orbit polyline
	OrbitCurveSegments = 96
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "orrery.log"
	MaxLogSize  = 10 * 1024 * 1024 // rotate above 10MB
)
