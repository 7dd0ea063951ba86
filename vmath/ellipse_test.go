package vmath

import (
	"math"
	"testing"
)

func TestEllipsePointOnCurve(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"circle", 10, 10},
		{"wide", 16, 14},
		{"narrow", 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for theta := 0.0; theta < 4*math.Pi; theta += 0.37 {
				p := EllipsePoint(tt.a, tt.b, theta)
				if d := EllipseDistSq(p.X, p.Z, tt.a, tt.b); math.Abs(d-1) > 1e-9 {
					t.Fatalf("theta=%.2f: dist %.12f, want 1", theta, d)
				}
				if p.Y != 0 {
					t.Fatalf("theta=%.2f: y=%f, want 0", theta, p.Y)
				}
			}
		})
	}
}

func TestEllipseSample(t *testing.T) {
	pts := EllipseSample(8, 4, 4)
	want := []Vec3F{{X: 8}, {Z: 4}, {X: -8}, {Z: -4}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if !V3FNear(pts[i], want[i], 1e-9) {
			t.Errorf("point %d = %+v, want %+v", i, pts[i], want[i])
		}
	}

	if EllipseSample(8, 4, 0) != nil {
		t.Error("expected nil for zero samples")
	}
}

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(Vec3F{3, 0, 4})
	if math.Abs(V3FMag(n)-1) > 1e-12 {
		t.Errorf("magnitude %f, want 1", V3FMag(n))
	}
	if (V3FNormalize(Vec3F{}) != Vec3F{}) {
		t.Error("zero vector should normalize to zero")
	}
}
