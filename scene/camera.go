package scene

import (
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Camera is a perspective camera looking at Target with world +Y up
type Camera struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
	Focal    float64
	Near     float64
	Zoom     float64 // projected unit size as a fraction of view height
}

// Projection is a world point mapped to view coordinates
type Projection struct {
	X, Y  float64 // view-space center
	Scale float64 // view rows per world unit at this depth
	Depth float64 // distance along the view axis
}

// DefaultCamera frames the solar scene from above and behind the orbital plane
func DefaultCamera() *Camera {
	return &Camera{
		Position: vmath.Vec3F{Y: constant.CameraHeight, Z: constant.CameraDistance},
		Focal:    constant.CameraFocal,
		Near:     constant.CameraNear,
		Zoom:     constant.ViewScale,
	}
}

// ZoomBy scales Zoom by factor, clamped to the shared zoom limits
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = min(max(c.Zoom*factor, constant.ZoomMin), constant.ZoomMax)
}

// Basis returns the camera's right, up, and forward unit vectors
func (c *Camera) Basis() (right, up, forward vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Position))
	right = vmath.V3FNormalize(vmath.V3FCross(forward, vmath.Vec3F{Y: 1}))
	up = vmath.V3FCross(right, forward)
	return right, up, forward
}

// Project maps p into a viewW x viewH region; aspect stretches X for non-square cells
// Returns false when p is behind the near plane
func (c *Camera) Project(p vmath.Vec3F, viewW, viewH int, aspect float64) (Projection, bool) {
	right, up, forward := c.Basis()

	d := vmath.V3FSub(p, c.Position)
	cx := vmath.V3FDot(d, right)
	cy := vmath.V3FDot(d, up)
	cz := vmath.V3FDot(d, forward)

	if cz < c.Near {
		return Projection{}, false
	}

	scale := c.Focal / cz * float64(viewH) * c.Zoom
	return Projection{
		X:     float64(viewW)/2 + cx*scale*aspect,
		Y:     float64(viewH)/2 - cy*scale,
		Scale: scale,
		Depth: cz,
	}, true
}
