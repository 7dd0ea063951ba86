package scene

import (
	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Renderer is the rendering collaborator: it allocates nodes it knows how to draw,
// draws a scene through a camera, and releases everything it allocated on Dispose
type Renderer interface {
	CreateMesh(id string, radius float64, color colorful.Color) (*Node, error)
	CreateLight(id string, color colorful.Color, intensity float64) (*Node, error)
	CreateCurve(id string, points []vmath.Vec3F, color colorful.Color) (*Node, error)
	Render(s *Scene, cam *Camera) error
	Dispose()
}
