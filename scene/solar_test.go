package scene

import (
	"errors"
	"testing"

	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/vmath"
)

func TestBuildSolarAllocatesNodes(t *testing.T) {
	r := &fakeRenderer{}
	bodies := orbit.SolarSystem()
	s, err := BuildSolar(r, bodies)
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}

	// Star: light + mesh, planets: curve + mesh
	if want := 2 * len(bodies); s.Scene.Len() != want || r.allocated != want {
		t.Errorf("nodes=%d allocated=%d, want %d", s.Scene.Len(), r.allocated, want)
	}
	if _, ok := s.Scene.Node(KindLight, "sun"); !ok {
		t.Error("missing sun light")
	}
	curve, ok := s.Scene.Node(KindCurve, "mars")
	if !ok {
		t.Fatal("missing mars orbit curve")
	}
	if len(curve.Points) == 0 {
		t.Error("empty orbit curve")
	}
}

func TestSolarAdapterMovesMeshes(t *testing.T) {
	s, err := BuildSolar(&fakeRenderer{}, orbit.SolarSystem())
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}
	sim, err := orbit.New(orbit.SolarSystem(), orbit.WithSink(s.Adapter))
	if err != nil {
		t.Fatalf("orbit.New: %v", err)
	}
	sim.Tick()

	for _, b := range sim.Bodies() {
		mesh, ok := s.Scene.Node(KindMesh, b.ID)
		if !ok {
			t.Fatalf("missing mesh %s", b.ID)
		}
		if !vmath.V3FNear(mesh.Position, b.Position(), 1e-12) {
			t.Errorf("%s mesh at %+v, body at %+v", b.ID, mesh.Position, b.Position())
		}
	}
}

func TestSolarDisposeIdempotent(t *testing.T) {
	r := &fakeRenderer{}
	s, err := BuildSolar(r, orbit.SolarSystem())
	if err != nil {
		t.Fatalf("BuildSolar: %v", err)
	}
	allocated := r.allocated

	s.Dispose()
	s.Dispose()

	if r.disposes != 1 {
		t.Errorf("renderer disposed %d times, want 1", r.disposes)
	}
	if r.released != allocated {
		t.Errorf("released %d, want %d", r.released, allocated)
	}
	if s.Scene.Len() != 0 || s.Adapter.Bound() != 0 {
		t.Error("scene retained node references after Dispose")
	}
	if err := s.Render(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Render after Dispose = %v, want ErrDisposed", err)
	}
}

func TestBuildSolarFailureReleases(t *testing.T) {
	r := &fakeRenderer{failAfter: 4}
	_, err := BuildSolar(r, orbit.SolarSystem())

	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("err = %v, want ErrInitFailed", err)
	}
	if !errors.Is(err, errNoContext) {
		t.Errorf("err = %v, want wrapped cause", err)
	}
	if r.disposes != 1 || r.allocated != 0 || r.released != 3 {
		t.Errorf("disposes=%d allocated=%d released=%d, want 1/0/3", r.disposes, r.allocated, r.released)
	}
}

func TestBuildSolarBadColor(t *testing.T) {
	bodies := []orbit.Body{{ID: "x", Color: "not-a-color"}}
	if _, err := BuildSolar(&fakeRenderer{}, bodies); !errors.Is(err, ErrInitFailed) {
		t.Errorf("err = %v, want ErrInitFailed", err)
	}
}
