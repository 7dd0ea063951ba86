package scene

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Solar is a built solar scene: graph, camera, position adapter, and the renderer that owns its resources
type Solar struct {
	Scene   *Scene
	Camera  *Camera
	Adapter *Adapter

	renderer Renderer
	once     sync.Once
	mu       sync.Mutex
	disposed bool
}

// BuildSolar allocates renderer nodes for every body: a light and mesh for stationary
// bodies, an orbit curve and mesh for the rest
// On failure everything already allocated is released and the error wraps ErrInitFailed
func BuildSolar(r Renderer, bodies []orbit.Body) (*Solar, error) {
	s := &Solar{
		Scene:    NewScene(),
		Camera:   DefaultCamera(),
		Adapter:  NewAdapter(),
		renderer: r,
	}

	for _, b := range bodies {
		if err := s.addBody(b); err != nil {
			s.Dispose()
			return nil, fmt.Errorf("%w: body %q: %w", ErrInitFailed, b.ID, err)
		}
	}

	return s, nil
}

func (s *Solar) addBody(b orbit.Body) error {
	color, err := parseColor(b.Color)
	if err != nil {
		return err
	}

	if b.Orbit.Stationary() {
		light, err := s.renderer.CreateLight(b.ID, color, 1.0)
		if err != nil {
			return fmt.Errorf("create light: %w", err)
		}
		if err := s.Scene.Add(light); err != nil {
			return err
		}
		s.Adapter.Bind(b.ID, light)
	} else {
		pts := vmath.EllipseSample(b.Orbit.SemiMajor, b.Orbit.SemiMinor, constant.OrbitCurveSegments)
		curve, err := s.renderer.CreateCurve(b.ID, pts, color)
		if err != nil {
			return fmt.Errorf("create curve: %w", err)
		}
		if err := s.Scene.Add(curve); err != nil {
			return err
		}
	}

	mesh, err := s.renderer.CreateMesh(b.ID, b.Radius, color)
	if err != nil {
		return fmt.Errorf("create mesh: %w", err)
	}
	mesh.Position = b.Position()
	if err := s.Scene.Add(mesh); err != nil {
		return err
	}
	s.Adapter.Bind(b.ID, mesh)
	return nil
}

// Render draws the scene, failing with ErrDisposed after Dispose
func (s *Solar) Render() error {
	s.mu.Lock()
	disposed := s.disposed
	s.mu.Unlock()

	if disposed {
		return ErrDisposed
	}
	return s.renderer.Render(s.Scene, s.Camera)
}

// Dispose releases node references and renderer resources exactly once
func (s *Solar) Dispose() {
	s.once.Do(func() {
		s.mu.Lock()
		s.disposed = true
		s.mu.Unlock()

		s.Adapter.Release()
		s.Scene.Clear()
		s.renderer.Dispose()
	})
}

// Disposed reports whether Dispose has run
func (s *Solar) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func parseColor(hex string) (colorful.Color, error) {
	if hex == "" {
		return colorful.Color{R: 1, G: 1, B: 1}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
