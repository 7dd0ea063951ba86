// Package platformer is a single-screen side-scroller: one player, gravity,
// a floor and a few ledges in a fixed 640x480 arena.
package platformer

import (
	"github.com/lixenwraith/orrery/constant"
)

// Rect is an axis-aligned box in arena pixels, Y grows downward
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) overlapsX(x, w float64) bool {
	return x+w > r.X && x < r.X+r.W
}

// Player is the controllable body
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Bounds returns the player hitbox
func (p Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// World holds the arena state; not safe for concurrent use
type World struct {
	Player    Player
	Platforms []Rect

	gravity  float64
	grounded bool

	moveDir  float64
	moveHold float64
	jumps    int
}

// NewWorld places the player at its spawn point above a floor and two ledges
func NewWorld() *World {
	floorY := float64(constant.ArenaHeight - constant.FloorHeight)
	return &World{
		Player: Player{
			X: constant.PlayerStartX,
			Y: constant.PlayerStartY,
			W: constant.PlayerWidth,
			H: constant.PlayerHeight,
		},
		Platforms: []Rect{
			{X: 0, Y: floorY, W: constant.ArenaWidth, H: constant.FloorHeight},
			{X: 240, Y: floorY - 80, W: 120, H: 12},
			{X: 420, Y: floorY - 160, W: 140, H: 12},
		},
		gravity: constant.Gravity,
	}
}

// Reset returns the player to spawn, keeping the platforms
func (w *World) Reset() {
	w.Player.X = constant.PlayerStartX
	w.Player.Y = constant.PlayerStartY
	w.Player.VX, w.Player.VY = 0, 0
	w.grounded = false
	w.moveDir, w.moveHold = 0, 0
}

// Move starts horizontal motion in dir (-1 left, 1 right) for the hold window
// Each repeat of the key press extends the window
func (w *World) Move(dir int) {
	switch {
	case dir < 0:
		w.moveDir = -1
	case dir > 0:
		w.moveDir = 1
	default:
		w.moveDir, w.moveHold = 0, 0
		return
	}
	w.moveHold = constant.MoveHoldSeconds
}

// Jump applies the upward impulse if the player stands on something
func (w *World) Jump() bool {
	if !w.grounded {
		return false
	}
	w.Player.VY = -constant.JumpForce
	w.grounded = false
	w.jumps++
	return true
}

// Grounded reports whether the player rested on a platform after the last step
func (w *World) Grounded() bool {
	return w.grounded
}

// Jumps counts successful jumps since creation
func (w *World) Jumps() int {
	return w.jumps
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	p := &w.Player

	// Horizontal: held direction moves at a constant speed, no inertia
	p.VX = 0
	if w.moveHold > 0 {
		p.VX = w.moveDir * constant.MoveSpeed
		w.moveHold -= dt
	}
	p.X += p.VX * dt
	if p.X < 0 {
		p.X = 0
	}
	if maxX := constant.ArenaWidth - p.W; p.X > maxX {
		p.X = maxX
	}

	// Vertical: semi-implicit Euler
	prevBottom := p.Y + p.H
	p.VY += w.gravity * dt
	p.Y += p.VY * dt
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}

	w.grounded = false
	if p.VY < 0 {
		return
	}

	// Platforms are one-way: only landing from above collides
	bottom := p.Y + p.H
	for _, pl := range w.Platforms {
		if !pl.overlapsX(p.X, p.W) {
			continue
		}
		if prevBottom <= pl.Y && bottom >= pl.Y {
			p.Y = pl.Y - p.H
			p.VY = 0
			w.grounded = true
			return
		}
	}

	// Fell below the arena through a gap: clamp to the bottom edge
	if maxY := float64(constant.ArenaHeight) - p.H; p.Y > maxY {
		p.Y = maxY
		p.VY = 0
		w.grounded = true
	}
}
