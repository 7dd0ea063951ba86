package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lucasb-eyer/go-colorful"
)

func newSolar(t *testing.T, w, h int) (*scene.Solar, *TerminalRenderer, *RenderBuffer) {
	t.Helper()
	buf := NewRenderBuffer(w, h)
	r := NewTerminalRenderer(buf)
	r.SetViewport(Viewport{X: 0, Y: 0, W: w, H: h})
	s, err := scene.BuildSolar(r, orbit.SolarSystem())
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}
	return s, r, buf
}

func TestTerminalRendererDrawsStarAtCenter(t *testing.T) {
	s, _, buf := newSolar(t, 120, 40)
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Sun sits at the camera target: the center cell is filled with a warm color
	c := buf.Get(60, 20)
	if c.Rune != ' ' {
		t.Fatalf("center rune %q, want sphere fill", c.Rune)
	}
	if c.Bg.R < 200 || c.Bg.G < 200 || c.Bg.B > c.Bg.R {
		t.Errorf("center bg %v, want bright yellow", c.Bg)
	}
}

func TestTerminalRendererDrawsOrbitCurves(t *testing.T) {
	s, _, buf := newSolar(t, 160, 50)
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	dots := 0
	w, h := buf.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Get(x, y).Rune == '·' {
				dots++
			}
		}
	}
	if dots < 50 {
		t.Errorf("found %d curve cells, want orbit paths drawn", dots)
	}
}

func TestTerminalRendererViewportOffset(t *testing.T) {
	buf := NewRenderBuffer(40, 20)
	r := NewTerminalRenderer(buf)
	r.SetViewport(Viewport{X: 0, Y: 5, W: 40, H: 10})
	s, err := scene.BuildSolar(r, orbit.SolarSystem())
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, y := range []int{0, 1, 2, 3, 4, 15, 16, 19} {
		for x := 0; x < 40; x++ {
			if buf.Get(x, y).Rune != 0 {
				t.Fatalf("drew outside viewport at (%d,%d)", x, y)
			}
		}
	}
}

func TestTerminalRendererEmptyViewport(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	r := NewTerminalRenderer(buf)
	s, err := scene.BuildSolar(r, orbit.SolarSystem())
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}
	if err := s.Render(); err != nil {
		t.Errorf("Render with empty viewport: %v", err)
	}
}

func TestTerminalRendererDispose(t *testing.T) {
	s, r, _ := newSolar(t, 80, 24)
	live := r.Live()
	if live == 0 {
		t.Fatal("no nodes allocated")
	}

	s.Dispose()
	r.Dispose()

	if r.Live() != 0 || r.Released() != live {
		t.Errorf("live=%d released=%d, want 0/%d", r.Live(), r.Released(), live)
	}
	if _, err := r.CreateMesh("late", 1, colorful.Color{}); !errors.Is(err, scene.ErrDisposed) {
		t.Errorf("CreateMesh after Dispose = %v, want ErrDisposed", err)
	}
	if err := r.Render(scene.NewScene(), scene.DefaultCamera()); !errors.Is(err, scene.ErrDisposed) {
		t.Errorf("Render after Dispose = %v, want ErrDisposed", err)
	}
}

func TestTerminalRendererNoBuffer(t *testing.T) {
	r := NewTerminalRenderer(nil)
	if _, err := scene.BuildSolar(r, orbit.SolarSystem()); !errors.Is(err, scene.ErrInitFailed) {
		t.Errorf("err = %v, want ErrInitFailed", err)
	}
}
