package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := DefaultCamera()
	p, ok := cam.Project(vmath.Vec3F{}, 80, 24, 2)
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(p.X-40) > 1e-9 || math.Abs(p.Y-12) > 1e-9 {
		t.Errorf("origin projected to (%f,%f), want (40,12)", p.X, p.Y)
	}
}

func TestCameraDepthOrdering(t *testing.T) {
	cam := DefaultCamera()
	near, _ := cam.Project(vmath.Vec3F{Z: 10}, 80, 24, 2)
	far, _ := cam.Project(vmath.Vec3F{Z: -10}, 80, 24, 2)

	if near.Depth >= far.Depth {
		t.Errorf("near depth %f >= far depth %f", near.Depth, far.Depth)
	}
	if near.Scale <= far.Scale {
		t.Errorf("near scale %f <= far scale %f", near.Scale, far.Scale)
	}
	// Nearer side of the orbital plane sits lower on screen
	if near.Y <= far.Y {
		t.Errorf("near y %f <= far y %f", near.Y, far.Y)
	}
}

func TestCameraAspectAndSide(t *testing.T) {
	cam := DefaultCamera()
	right, _ := cam.Project(vmath.Vec3F{X: 5}, 80, 24, 2)
	square, _ := cam.Project(vmath.Vec3F{X: 5}, 80, 24, 1)

	if right.X <= 40 {
		t.Errorf("+X projected left of center: %f", right.X)
	}
	if math.Abs((right.X-40)-2*(square.X-40)) > 1e-9 {
		t.Errorf("aspect not applied: %f vs %f", right.X-40, square.X-40)
	}
}

func TestCameraBehindNearPlane(t *testing.T) {
	cam := DefaultCamera()
	if _, ok := cam.Project(vmath.V3FScale(cam.Position, 2), 80, 24, 2); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestCameraZoomByClamps(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		steps  int
		want   float64
	}{
		{"zoom in saturates", 1.5, 50, constant.ZoomMax},
		{"zoom out saturates", 1 / 1.5, 50, constant.ZoomMin},
		{"inside limits", 2, 1, constant.ViewScale * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := DefaultCamera()
			for i := 0; i < tt.steps; i++ {
				cam.ZoomBy(tt.factor)
			}
			if math.Abs(cam.Zoom-tt.want) > 1e-12 {
				t.Errorf("Zoom = %v, want %v", cam.Zoom, tt.want)
			}
		})
	}
}
