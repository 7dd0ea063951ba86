package vmath

import "math"

// Ellipse utilities for orbit paths in the XZ plane
// An ellipse is centered at the origin with semi-axis a along X and b along Z

// EllipsePoint returns the point at parametric angle theta
func EllipsePoint(a, b, theta float64) Vec3F {
	return Vec3F{X: a * math.Cos(theta), Z: b * math.Sin(theta)}
}

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result == 1 means the point lies on the ellipse, < 1 inside
func EllipseDistSq(x, z, a, b float64) float64 {
	nx := x / a
	nz := z / b
	return nx*nx + nz*nz
}

// EllipseSample returns n points evenly spaced in parametric angle, closed by the caller
func EllipseSample(a, b float64, n int) []Vec3F {
	if n <= 0 {
		return nil
	}
	pts := make([]Vec3F, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = EllipsePoint(a, b, float64(i)*step)
	}
	return pts
}
