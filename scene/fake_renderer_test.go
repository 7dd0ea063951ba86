package scene

import (
	"errors"

	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// fakeRenderer counts allocations and releases; failAfter > 0 fails the Nth creation
type fakeRenderer struct {
	allocated int
	released  int
	disposes  int
	renders   int
	failAfter int
	created   int
}

var errNoContext = errors.New("no rendering context")

func (f *fakeRenderer) alloc(n *Node) (*Node, error) {
	f.created++
	if f.failAfter > 0 && f.created >= f.failAfter {
		return nil, errNoContext
	}
	f.allocated++
	return n, nil
}

func (f *fakeRenderer) CreateMesh(id string, radius float64, color colorful.Color) (*Node, error) {
	return f.alloc(&Node{ID: id, Kind: KindMesh, Radius: radius, Color: color, Visible: true})
}

func (f *fakeRenderer) CreateLight(id string, color colorful.Color, intensity float64) (*Node, error) {
	return f.alloc(&Node{ID: id, Kind: KindLight, Intensity: intensity, Color: color, Visible: true})
}

func (f *fakeRenderer) CreateCurve(id string, points []vmath.Vec3F, color colorful.Color) (*Node, error) {
	return f.alloc(&Node{ID: id, Kind: KindCurve, Points: points, Color: color, Visible: true})
}

func (f *fakeRenderer) Render(*Scene, *Camera) error {
	f.renders++
	return nil
}

func (f *fakeRenderer) Dispose() {
	f.disposes++
	f.released += f.allocated
	f.allocated = 0
}
