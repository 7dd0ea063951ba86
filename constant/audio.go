package constant

import "time"

// Revolution Chime Timing
const (
	ChimeSampleRate   = 48000
	ChimeBufferWindow = 100 * time.Millisecond

	ChimeDuration = 600 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 550 * time.Millisecond

	// ChimeBaseFreq is the pitch of the innermost orbit, outer orbits step down
	ChimeBaseFreq = 880.0
	ChimeStep     = 0.84
	ChimeVolume   = 0.25
)
