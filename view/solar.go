package view

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/scene"
)

const zoomStep = 1.15

// SolarView animates the solar scene
// A failed mount leaves the view showing a fallback message until it is unmounted
type SolarView struct {
	bodies []orbit.Body
	index  map[string]int

	env      Env
	renderer *render.TerminalRenderer
	solar    *scene.Solar
	sim      *orbit.Simulator
	loop     *orbit.Loop

	mounted     bool
	paused      bool
	revolutions int
	failure     error
}

// NewSolarView creates the page for the given bodies
func NewSolarView(bodies []orbit.Body) *SolarView {
	idx := make(map[string]int, len(bodies))
	for i, b := range bodies {
		idx[b.ID] = i
	}
	return &SolarView{bodies: bodies, index: idx}
}

func (v *SolarView) Path() string  { return "/solarSystem" }
func (v *SolarView) Title() string { return displayName("solar system") }

// Mount builds the scene and starts the frame loop
func (v *SolarView) Mount(env Env) error {
	v.env = env
	v.failure = nil
	v.paused = false
	v.revolutions = 0

	if err := v.build(); err != nil {
		v.failure = err
		log.Printf("solar: mount failed: %v", err)
		return err
	}

	v.mounted = true
	v.startLoop()
	return nil
}

func (v *SolarView) build() error {
	if v.env.Frames == nil {
		return fmt.Errorf("%w: no frame scheduler", scene.ErrInitFailed)
	}

	r := render.NewTerminalRenderer(v.env.Buffer)
	solar, err := scene.BuildSolar(r, v.bodies)
	if err != nil {
		return err
	}

	opts := []orbit.Option{orbit.WithSink(solar.Adapter)}
	if v.env.Increment > 0 {
		opts = append(opts, orbit.WithIncrement(v.env.Increment))
	}
	sim, err := orbit.New(v.bodies, opts...)
	if err != nil {
		solar.Dispose()
		return fmt.Errorf("%w: %w", scene.ErrInitFailed, err)
	}
	sim.EmitAll()

	v.renderer = r
	v.solar = solar
	v.sim = sim
	return nil
}

func (v *SolarView) startLoop() {
	v.loop = orbit.NewLoop(v.sim, v.env.Frames, v.onFrame)
	v.loop.Start()
}

func (v *SolarView) onFrame(_ time.Time, completed []string) error {
	v.revolutions += len(completed)
	if v.env.Chime == nil {
		return nil
	}
	for _, id := range completed {
		v.env.Chime.PlayRevolution(v.index[id])
	}
	return nil
}

// Unmount stops the loop before releasing the scene; safe to call repeatedly
func (v *SolarView) Unmount() {
	if v.loop != nil {
		v.loop.Stop()
		v.loop = nil
	}
	if v.solar != nil {
		v.solar.Dispose()
		v.solar = nil
	}
	v.renderer = nil
	v.sim = nil
	v.mounted = false
}

// Failure returns the mount error, nil when the scene is live
func (v *SolarView) Failure() error {
	return v.failure
}

// Simulator exposes the running simulator, nil when not mounted
func (v *SolarView) Simulator() *orbit.Simulator {
	return v.sim
}

// Revolutions counts completed revolutions since mount
func (v *SolarView) Revolutions() int {
	return v.revolutions
}

// Paused reports whether the frame loop is halted
func (v *SolarView) Paused() bool {
	return v.paused
}

// HandleKey: p pauses, + and - zoom
func (v *SolarView) HandleKey(ev *tcell.EventKey) bool {
	if !v.mounted || ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'p', ' ':
		v.togglePause()
	case '+', '=':
		v.solar.Camera.ZoomBy(zoomStep)
	case '-', '_':
		v.solar.Camera.ZoomBy(1 / zoomStep)
	default:
		return false
	}
	return true
}

// A stopped loop cannot restart, so resuming builds a fresh one over the same simulator
func (v *SolarView) togglePause() {
	if v.paused {
		v.paused = false
		v.startLoop()
		return
	}
	v.paused = true
	v.loop.Stop()
}

// Draw renders the scene above a one-row HUD, or the fallback message
func (v *SolarView) Draw(buf *render.RenderBuffer, area render.Viewport) {
	if area.Empty() {
		return
	}

	if v.failure != nil {
		v.drawFallback(buf, area)
		return
	}
	if !v.mounted {
		return
	}

	sceneArea := area
	if area.H > constant.HUDRows {
		sceneArea.H -= constant.HUDRows
	}
	v.renderer.SetViewport(sceneArea)
	if err := v.solar.Render(); err != nil && !errors.Is(err, scene.ErrDisposed) {
		log.Printf("solar: render: %v", err)
	}

	if sceneArea.H < area.H {
		v.drawHUD(buf, render.Viewport{X: area.X, Y: sceneArea.Y + sceneArea.H, W: area.W, H: constant.HUDRows})
	}
}

func (v *SolarView) drawHUD(buf *render.RenderBuffer, area render.Viewport) {
	for x := area.X; x < area.X+area.W; x++ {
		buf.SetBgOnly(x, area.Y, render.RgbNavbar)
	}

	state := "running"
	if v.paused {
		state = "paused"
	}
	text := fmt.Sprintf(" tick %d · revolutions %d · zoom %.2fx · %s   [p] pause  [+/-] zoom",
		v.sim.Ticks(), v.revolutions, v.solar.Camera.Zoom/constant.ViewScale, state)
	buf.WriteString(area.X, area.Y, text, render.RgbDim, tcell.AttrNone)
}

func (v *SolarView) drawFallback(buf *render.RenderBuffer, area render.Viewport) {
	msg := "3D scene unavailable: " + v.failure.Error()
	lines := wrap(msg, area.W-2)
	y := area.Y + (area.H-len(lines))/2
	for _, line := range lines {
		buf.WriteString(centered(area, line), y, line, render.RgbError, tcell.AttrNone)
		y++
	}
}
