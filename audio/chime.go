// Package audio plays the short cues of the orrery views through the system speaker.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/orrery/constant"
)

const sampleRate = beep.SampleRate(constant.ChimeSampleRate)

// Chime rings a bell when an orbiting body completes a revolution
// Pitch descends with the body's orbit index, inner planets ring highest
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool
	played      int
}

// NewChime creates a chime; it stays silent until Initialize succeeds
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the chime mixer
// Safe to call repeatedly; a failure leaves the chime silent
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.ChimeBufferWindow)); err != nil {
		return err
	}

	c.ctrl = &beep.Ctrl{Streamer: c.mixer}
	speaker.Play(c.ctrl)
	c.initialized = true
	return nil
}

// Cleanup silences pending tones; beep has no speaker close, clearing the mixer stops output
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.ctrl.Paused = true
	c.mixer.Clear()
	speaker.Unlock()

	c.initialized = false
}

// SetMuted toggles output without releasing the speaker
func (c *Chime) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// Muted reports the mute state
func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Played returns how many tones were queued on the speaker
func (c *Chime) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// PlayRevolution rings the tone for the body at orbit index
func (c *Chime) PlayRevolution(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	bell := NewBell(Frequency(index), constant.ChimeDuration, constant.ChimeAttack,
		constant.ChimeRelease, constant.ChimeVolume, sampleRate)

	speaker.Lock()
	c.mixer.Add(bell)
	speaker.Unlock()
	c.played++
}

// Frequency maps an orbit index to a pitch, each step lower than the last
func Frequency(index int) float64 {
	if index < 0 {
		index = 0
	}
	return constant.ChimeBaseFreq * math.Pow(constant.ChimeStep, float64(index))
}
