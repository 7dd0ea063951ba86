// Package window hosts the solar scene in a desktop window via ebiten.
package window

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/orrery/canvas"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/scene"
)

// Surface size in pixels; the window opens at this size and scales on resize
const (
	surfaceWidth  = 960
	surfaceHeight = 640
)

// zoomStep applies per held update, so it is much finer than the terminal step
const zoomStep = 1.01

// Chimer receives revolution cues
type Chimer interface {
	PlayRevolution(index int)
	SetMuted(muted bool)
	Muted() bool
}

// Options configures Run
type Options struct {
	Title     string
	TPS       int
	Increment float64
	Chime     Chimer
}

// Run opens a window animating bodies and blocks until it closes
func Run(bodies []orbit.Body, opts Options) error {
	h := newHost(bodies, opts)
	defer h.close()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(surfaceWidth, surfaceHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// host implements ebiten.Game: Update dispatches the frame queue, Draw paints the draw list
type host struct {
	queue   *frame.Queue
	canvas  *canvas.Renderer
	solar   *scene.Solar
	sim     *orbit.Simulator
	loop    *orbit.Loop
	bodies  map[string]int
	chime   Chimer
	failure error
	paused  bool
}

func newHost(bodies []orbit.Body, opts Options) *host {
	h := &host{
		queue:  frame.NewQueue(),
		canvas: canvas.NewRenderer(surfaceWidth, surfaceHeight),
		bodies: make(map[string]int, len(bodies)),
		chime:  opts.Chime,
	}
	for i, b := range bodies {
		h.bodies[b.ID] = i
	}

	solar, err := scene.BuildSolar(h.canvas, bodies)
	if err != nil {
		h.failure = err
		log.Printf("window: %v", err)
		return h
	}

	simOpts := []orbit.Option{orbit.WithSink(solar.Adapter)}
	if opts.Increment > 0 {
		simOpts = append(simOpts, orbit.WithIncrement(opts.Increment))
	}
	sim, err := orbit.New(bodies, simOpts...)
	if err != nil {
		solar.Dispose()
		h.failure = fmt.Errorf("%w: %w", scene.ErrInitFailed, err)
		log.Printf("window: %v", h.failure)
		return h
	}
	sim.EmitAll()

	h.solar = solar
	h.sim = sim
	h.startLoop()
	return h
}

func (h *host) startLoop() {
	h.loop = orbit.NewLoop(h.sim, h.queue, h.onFrame)
	h.loop.Start()
}

func (h *host) onFrame(_ time.Time, completed []string) error {
	if h.chime == nil {
		return nil
	}
	for _, id := range completed {
		h.chime.PlayRevolution(h.bodies[id])
	}
	return nil
}

func (h *host) close() {
	if h.loop != nil {
		h.loop.Stop()
	}
	if h.solar != nil {
		h.solar.Dispose()
	}
}

func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if h.solar == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if h.paused {
			h.startLoop()
		} else {
			h.loop.Stop()
		}
		h.paused = !h.paused
	}
	if h.chime != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		h.chime.SetMuted(!h.chime.Muted())
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) {
		h.solar.Camera.ZoomBy(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract) {
		h.solar.Camera.ZoomBy(1 / zoomStep)
	}

	h.queue.Dispatch(time.Now())
	return h.solar.Render()
}

func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(canvas.Background)

	if h.failure != nil {
		ebitenutil.DebugPrint(screen, "3D scene unavailable: "+h.failure.Error())
		return
	}

	for _, sh := range h.canvas.DrawList() {
		switch sh.Kind {
		case canvas.ShapePolyline:
			for i := 1; i < len(sh.Points); i++ {
				a, b := sh.Points[i-1], sh.Points[i]
				vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, sh.Width, sh.Color, true)
			}
		case canvas.ShapeCircle:
			vector.DrawFilledCircle(screen, sh.Center.X, sh.Center.Y, sh.Radius, sh.Color, true)
		}
	}

	if h.paused {
		ebitenutil.DebugPrint(screen, "paused")
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, hh := h.canvas.Size(); w != outsideWidth || hh != outsideHeight {
		h.canvas.SetSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
