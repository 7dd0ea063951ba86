// Package canvas renders a scene into a pixel-space draw list of circles and
// polylines. It has no windowing dependency; a host paints the list.
package canvas

import (
	"image/color"
	"math"
	"sort"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// ShapeKind tags a draw list entry
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapePolyline
)

// Point is a pixel coordinate
type Point struct {
	X, Y float32
}

// Shape is one draw command
type Shape struct {
	Kind   ShapeKind
	Center Point
	Radius float32
	Points []Point     // polyline vertices
	Width  float32     // polyline stroke width
	Color  color.NRGBA // straight alpha
	Depth  float64
}

// Background is the clear color hosts paint before the draw list
var Background = color.NRGBA{R: 10, G: 11, B: 20, A: 0xff}

// Renderer implements scene.Renderer into a draw list sized in pixels
type Renderer struct {
	width, height int

	live     map[*scene.Node]struct{}
	released int
	disposed bool

	list []Shape
}

// NewRenderer creates a renderer for a width x height pixel surface
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		live:   make(map[*scene.Node]struct{}),
	}
}

// SetSize changes the target surface
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the target surface
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) alloc(n *scene.Node) (*scene.Node, error) {
	if r.disposed {
		return nil, scene.ErrDisposed
	}
	n.Visible = true
	r.live[n] = struct{}{}
	return n, nil
}

func (r *Renderer) CreateMesh(id string, radius float64, c colorful.Color) (*scene.Node, error) {
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindMesh, Radius: radius, Color: c})
}

func (r *Renderer) CreateLight(id string, c colorful.Color, intensity float64) (*scene.Node, error) {
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindLight, Intensity: intensity, Color: c})
}

func (r *Renderer) CreateCurve(id string, points []vmath.Vec3F, c colorful.Color) (*scene.Node, error) {
	pts := make([]vmath.Vec3F, len(points))
	copy(pts, points)
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindCurve, Points: pts, Color: c})
}

// Live returns the count of nodes allocated and not yet released
func (r *Renderer) Live() int { return len(r.live) }

// Released returns the count of nodes released by Dispose
func (r *Renderer) Released() int { return r.released }

// Dispose releases every allocated node, safe to call repeatedly
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.released += len(r.live)
	clear(r.live)
	r.list = nil
}

// DrawList returns the shapes of the last Render: curves first, then bodies far to near
func (r *Renderer) DrawList() []Shape {
	return r.list
}

// Render rebuilds the draw list
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) error {
	if r.disposed {
		return scene.ErrDisposed
	}
	r.list = r.list[:0]
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	var lights []*scene.Node
	for _, n := range s.Nodes() {
		if n.Visible && n.Kind == scene.KindLight {
			lights = append(lights, n)
		}
	}

	for _, n := range s.Nodes() {
		if n.Visible && n.Kind == scene.KindCurve {
			r.addCurve(n, cam)
		}
	}

	start := len(r.list)
	for _, n := range s.Nodes() {
		if !n.Visible || n.Kind != scene.KindMesh {
			continue
		}
		p, ok := cam.Project(n.Position, r.width, r.height, 1)
		if !ok {
			continue
		}
		emissive := false
		for _, l := range lights {
			if vmath.V3FNear(l.Position, n.Position, 1e-9) {
				emissive = true
				break
			}
		}
		r.addBody(n, p, emissive)
	}

	bodies := r.list[start:]
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Depth > bodies[j].Depth
	})
	r.shadeByDepth(bodies)
	return nil
}

func (r *Renderer) addCurve(n *scene.Node, cam *scene.Camera) {
	if len(n.Points) < 2 {
		return
	}
	c := toNRGBA(n.Color.BlendLab(colorfulOf(Background), 0.55))

	// Split at points behind the near plane; close the loop through the first point
	var run []Point
	flush := func() {
		if len(run) >= 2 {
			r.list = append(r.list, Shape{Kind: ShapePolyline, Points: run, Width: 1, Color: c})
		}
		run = nil
	}
	for i := 0; i <= len(n.Points); i++ {
		p, ok := cam.Project(n.Points[i%len(n.Points)], r.width, r.height, 1)
		if !ok {
			flush()
			continue
		}
		run = append(run, Point{X: float32(p.X), Y: float32(p.Y)})
	}
	flush()
}

func (r *Renderer) addBody(n *scene.Node, p scene.Projection, emissive bool) {
	radius := float32(n.Radius * p.Scale)
	if radius < 1 {
		radius = 1
	}
	center := Point{X: float32(p.X), Y: float32(p.Y)}

	if emissive {
		glow := toNRGBA(n.Color)
		glow.A = 0x40
		r.list = append(r.list, Shape{
			Kind:   ShapeCircle,
			Center: center,
			Radius: radius * float32(constant.GlowFactor),
			Color:  glow,
			Depth:  p.Depth + 1e-6, // keep the halo behind its own core
		})
	}

	r.list = append(r.list, Shape{
		Kind:   ShapeCircle,
		Center: center,
		Radius: radius,
		Color:  toNRGBA(n.Color),
		Depth:  p.Depth,
	})
}

// shadeByDepth fades opaque bodies toward the background with distance
func (r *Renderer) shadeByDepth(bodies []Shape) {
	if len(bodies) == 0 {
		return
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bodies {
		if b.Color.A == 0xff {
			lo = min(lo, b.Depth)
			hi = max(hi, b.Depth)
		}
	}
	if hi <= lo {
		return
	}
	bg := colorfulOf(Background)
	for i := range bodies {
		if bodies[i].Color.A != 0xff || bodies[i].Depth == lo {
			continue
		}
		t := (bodies[i].Depth - lo) / (hi - lo) * constant.DepthFalloff
		bodies[i].Color = toNRGBA(colorfulOf(bodies[i].Color).BlendLab(bg, t))
	}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func colorfulOf(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
