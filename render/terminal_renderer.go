package render

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// Viewport is the buffer region a renderer draws into
type Viewport struct {
	X, Y, W, H int
}

func (v Viewport) Empty() bool {
	return v.W <= 0 || v.H <= 0
}

type projectedMesh struct {
	node     *scene.Node
	proj     scene.Projection
	emissive bool
	light    vmath.Vec3F // camera-frame light direction, zero when unlit
}

type star struct {
	x, y  int
	glyph rune
	level float64
}

// TerminalRenderer draws a scene into a RenderBuffer region with cell-aspect correction
// Spheres are shaded per cell from the nearest light; orbit curves are dotted polylines
type TerminalRenderer struct {
	buf  *RenderBuffer
	view Viewport

	live     map[*scene.Node]struct{}
	released int
	disposed bool

	stars     []star
	starsView Viewport
	meshes    []projectedMesh
}

// NewTerminalRenderer binds a renderer to a buffer; call SetViewport before Render
func NewTerminalRenderer(buf *RenderBuffer) *TerminalRenderer {
	return &TerminalRenderer{
		buf:  buf,
		live: make(map[*scene.Node]struct{}),
	}
}

// SetViewport selects the drawing region
func (r *TerminalRenderer) SetViewport(v Viewport) {
	r.view = v
}

// Live returns the count of nodes allocated and not yet released
func (r *TerminalRenderer) Live() int {
	return len(r.live)
}

// Released returns the count of nodes released by Dispose
func (r *TerminalRenderer) Released() int {
	return r.released
}

func (r *TerminalRenderer) alloc(n *scene.Node) (*scene.Node, error) {
	if r.disposed {
		return nil, scene.ErrDisposed
	}
	if r.buf == nil {
		return nil, fmt.Errorf("terminal renderer: no render buffer")
	}
	n.Visible = true
	r.live[n] = struct{}{}
	return n, nil
}

func (r *TerminalRenderer) CreateMesh(id string, radius float64, color colorful.Color) (*scene.Node, error) {
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindMesh, Radius: radius, Color: color})
}

func (r *TerminalRenderer) CreateLight(id string, color colorful.Color, intensity float64) (*scene.Node, error) {
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindLight, Intensity: intensity, Color: color})
}

func (r *TerminalRenderer) CreateCurve(id string, points []vmath.Vec3F, color colorful.Color) (*scene.Node, error) {
	pts := make([]vmath.Vec3F, len(points))
	copy(pts, points)
	return r.alloc(&scene.Node{ID: id, Kind: scene.KindCurve, Points: pts, Color: color})
}

// Dispose releases every allocated node, safe to call repeatedly
func (r *TerminalRenderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.released += len(r.live)
	clear(r.live)
	r.meshes = nil
	r.stars = nil
}

// Render draws starfield, orbit curves, then spheres far to near
func (r *TerminalRenderer) Render(s *scene.Scene, cam *scene.Camera) error {
	if r.disposed {
		return scene.ErrDisposed
	}
	if r.view.Empty() {
		return nil
	}

	r.drawStarfield()

	var lights []*scene.Node
	for _, n := range s.Nodes() {
		if n.Visible && n.Kind == scene.KindLight {
			lights = append(lights, n)
		}
	}

	for _, n := range s.Nodes() {
		if n.Visible && n.Kind == scene.KindCurve {
			r.drawCurve(n, cam)
		}
	}

	right, up, forward := cam.Basis()
	r.meshes = r.meshes[:0]
	for _, n := range s.Nodes() {
		if !n.Visible || n.Kind != scene.KindMesh {
			continue
		}
		proj, ok := cam.Project(n.Position, r.view.W, r.view.H, constant.CellAspect)
		if !ok {
			continue
		}
		pm := projectedMesh{node: n, proj: proj}
		if l := nearestLight(lights, n.Position); l != nil {
			if vmath.V3FNear(l.Position, n.Position, 1e-9) {
				pm.emissive = true
			} else {
				dir := vmath.V3FNormalize(vmath.V3FSub(l.Position, n.Position))
				// Cell frame: +x right, +y down, +z toward viewer
				pm.light = vmath.Vec3F{
					X: vmath.V3FDot(dir, right),
					Y: -vmath.V3FDot(dir, up),
					Z: -vmath.V3FDot(dir, forward),
				}
			}
		}
		r.meshes = append(r.meshes, pm)
	}

	// Painter's algorithm: sort far to near
	sort.SliceStable(r.meshes, func(i, j int) bool {
		return r.meshes[i].proj.Depth > r.meshes[j].proj.Depth
	})

	minDepth, maxDepth := math.Inf(1), math.Inf(-1)
	for _, m := range r.meshes {
		minDepth = min(minDepth, m.proj.Depth)
		maxDepth = max(maxDepth, m.proj.Depth)
	}

	for _, m := range r.meshes {
		depthT := 0.0
		if maxDepth > minDepth {
			depthT = (m.proj.Depth - minDepth) / (maxDepth - minDepth)
		}
		r.renderSphere(m, depthT)
	}

	return nil
}

func nearestLight(lights []*scene.Node, p vmath.Vec3F) *scene.Node {
	var best *scene.Node
	bestDist := math.Inf(1)
	for _, l := range lights {
		if d := vmath.V3FMagSq(vmath.V3FSub(l.Position, p)); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

func (r *TerminalRenderer) drawStarfield() {
	if r.starsView != r.view {
		r.starsView = r.view
		r.stars = r.stars[:0]
		rng := rand.New(rand.NewPCG(uint64(r.view.W), uint64(r.view.H)))
		count := r.view.W * r.view.H / 40
		glyphs := []rune{'.', '+', '*'}
		for i := 0; i < count; i++ {
			r.stars = append(r.stars, star{
				x:     rng.IntN(r.view.W),
				y:     rng.IntN(r.view.H),
				glyph: glyphs[rng.IntN(len(glyphs))],
				level: 0.4 + 0.6*rng.Float64(),
			})
		}
	}
	for _, s := range r.stars {
		r.buf.SetFgOnly(r.view.X+s.x, r.view.Y+s.y, s.glyph, Scale(RgbStarfield, s.level), tcell.AttrNone)
	}
}

func (r *TerminalRenderer) drawCurve(n *scene.Node, cam *scene.Camera) {
	if len(n.Points) < 2 {
		return
	}
	base := LerpLab(FromColorful(n.Color), RgbBackground, 0.55)

	prev, prevOK := cam.Project(n.Points[len(n.Points)-1], r.view.W, r.view.H, constant.CellAspect)
	for _, p := range n.Points {
		cur, ok := cam.Project(p, r.view.W, r.view.H, constant.CellAspect)
		if ok && prevOK {
			r.plotSegment(prev, cur, base)
		}
		prev, prevOK = cur, ok
	}
}

func (r *TerminalRenderer) plotSegment(a, b scene.Projection, fg RGB) {
	steps := int(math.Ceil(max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(a.X + (b.X-a.X)*t))
		y := int(math.Floor(a.Y + (b.Y-a.Y)*t))
		r.setView(x, y, '·', fg)
	}
}

func (r *TerminalRenderer) setView(x, y int, ch rune, fg RGB) {
	if x < 0 || y < 0 || x >= r.view.W || y >= r.view.H {
		return
	}
	r.buf.SetFgOnly(r.view.X+x, r.view.Y+y, ch, fg, tcell.AttrNone)
}

// blendView composites a background; ch 0 keeps the glyph already in the cell
func (r *TerminalRenderer) blendView(x, y int, ch rune, bg RGB, mode BlendMode, alpha float64) {
	if x < 0 || y < 0 || x >= r.view.W || y >= r.view.H {
		return
	}
	r.buf.Set(r.view.X+x, r.view.Y+y, ch, RGBBlack, bg, mode, alpha, tcell.AttrNone)
}

func (r *TerminalRenderer) renderSphere(m projectedMesh, depthT float64) {
	radius := m.node.Radius * m.proj.Scale
	base := FromColorful(m.node.Color)
	depthBright := 1.0 - depthT*constant.DepthFalloff
	base = LerpLab(base, RgbBackground, 1-depthBright)

	if radius < constant.MinSphereCells {
		r.setView(int(m.proj.X), int(m.proj.Y), '●', base)
		return
	}

	glowRadius := radius * constant.GlowFactor
	prX := glowRadius * constant.CellAspect
	prY := glowRadius

	minX := int(m.proj.X - prX - 1)
	maxX := int(m.proj.X + prX + 1)
	minY := int(m.proj.Y - prY - 1)
	maxY := int(m.proj.Y + prY + 1)

	glowLimit := constant.GlowFactor * constant.GlowFactor

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - m.proj.X) / (radius * constant.CellAspect)
			ny := (float64(sy) + 0.5 - m.proj.Y) / radius
			distSq := nx*nx + ny*ny

			if distSq > glowLimit {
				continue
			}

			if distSq > 1.0 {
				// Outer glow only for emitters
				if !m.emissive {
					continue
				}
				glowDist := math.Sqrt(distSq) - 1.0
				falloff := math.Exp(-glowDist*3.0) * 0.6 * depthBright
				r.blendView(sx, sy, 0, Scale(base, falloff), BlendScreenBg, 0.8)
				continue
			}

			nz := math.Sqrt(1.0 - distSq)
			var c RGB
			if m.emissive {
				// Hot core fading to a saturated rim
				core := 1.0 - math.Sqrt(distSq)
				c = Lerp(base, RGBWhite, core*0.5)
			} else {
				diffuse := nx*m.light.X + ny*m.light.Y + nz*m.light.Z
				if diffuse < 0 {
					diffuse = 0
				}
				rim := (1.0 - nz) * (1.0 - nz) * 0.3
				c = Scale(base, 0.18+0.9*diffuse+rim)
			}

			alpha := 1.0
			if edge := 1.0 - math.Sqrt(distSq); edge < 0.08 {
				alpha = 0.4 + edge/0.08*0.6
			}
			r.blendView(sx, sy, ' ', c, BlendAlpha, alpha)
		}
	}
}
