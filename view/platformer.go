package view

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/platformer"
	"github.com/lixenwraith/orrery/render"
)

// rgbArena is the black backdrop of the game canvas
var rgbArena = render.RGB{}

// PlatformerView hosts the platformer world on its own frame callback chain
type PlatformerView struct {
	world *platformer.World
	env   Env

	pending frame.ID
	active  bool
	last    time.Time
}

// NewPlatformerView creates the page; the world is built on mount
func NewPlatformerView() *PlatformerView {
	return &PlatformerView{}
}

func (v *PlatformerView) Path() string  { return "/platformer" }
func (v *PlatformerView) Title() string { return displayName("platformer") }

// World returns the mounted world, nil otherwise
func (v *PlatformerView) World() *platformer.World {
	return v.world
}

func (v *PlatformerView) Mount(env Env) error {
	if env.Frames == nil {
		return fmt.Errorf("platformer: no frame scheduler")
	}
	v.env = env
	v.world = platformer.NewWorld()
	v.last = time.Time{}
	v.active = true
	v.pending = env.Frames.RequestFrame(v.step)
	return nil
}

func (v *PlatformerView) step(now time.Time) {
	if !v.active {
		return
	}

	if !v.last.IsZero() {
		dt := now.Sub(v.last)
		if dt > constant.MaxFrameDelta {
			dt = constant.MaxFrameDelta
		}
		v.world.Step(dt.Seconds())
	}
	v.last = now
	v.pending = v.env.Frames.RequestFrame(v.step)
}

func (v *PlatformerView) Unmount() {
	if !v.active {
		return
	}
	v.active = false
	v.env.Frames.CancelFrame(v.pending)
	v.world = nil
}

// HandleKey maps arrows and vi keys to movement; terminals send repeats while a key is held
func (v *PlatformerView) HandleKey(ev *tcell.EventKey) bool {
	if v.world == nil {
		return false
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		v.world.Move(-1)
		return true
	case tcell.KeyRight:
		v.world.Move(1)
		return true
	case tcell.KeyUp:
		v.world.Jump()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			v.world.Move(-1)
		case 'l', 'd':
			v.world.Move(1)
		case ' ', 'k', 'w':
			v.world.Jump()
		case 'r':
			v.world.Reset()
		default:
			return false
		}
		return true
	}
	return false
}

// Draw scales the arena to fill area
func (v *PlatformerView) Draw(buf *render.RenderBuffer, area render.Viewport) {
	if area.Empty() || v.world == nil {
		return
	}

	sx := float64(area.W) / constant.ArenaWidth
	sy := float64(area.H) / constant.ArenaHeight

	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbForeground, rgbArena)
		}
	}

	for _, p := range v.world.Platforms {
		x0, y0, x1, y1 := cellRect(area, p, sx, sy)
		for y := y0; y < y1; y++ {
			bg := render.RgbGround
			if y == y0 {
				bg = render.RgbGrass
			}
			for x := x0; x < x1; x++ {
				buf.SetWithBg(x, y, ' ', render.RgbForeground, bg)
			}
		}
	}

	x0, y0, x1, y1 := cellRect(area, v.world.Player.Bounds(), sx, sy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.SetWithBg(x, y, '█', render.RgbPlayer, rgbArena)
		}
	}

	status := "airborne"
	if v.world.Grounded() {
		status = "grounded"
	}
	buf.WriteString(area.X+1, area.Y, fmt.Sprintf("%s · jumps %d", status, v.world.Jumps()), render.RgbDim, tcell.AttrNone)
}

// cellRect maps an arena rectangle to a half-open cell range, at least one cell wide and tall
func cellRect(area render.Viewport, r platformer.Rect, sx, sy float64) (x0, y0, x1, y1 int) {
	x0 = area.X + int(math.Floor(r.X*sx))
	y0 = area.Y + int(math.Floor(r.Y*sy))
	x1 = area.X + int(math.Ceil((r.X+r.W)*sx))
	y1 = area.Y + int(math.Ceil((r.Y+r.H)*sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x1 = min(x1, area.X+area.W)
	y1 = min(y1, area.Y+area.H)
	return
}
