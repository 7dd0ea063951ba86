package platformer

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/constant"
)

const step = 1.0 / 120

func settle(w *World, seconds float64) {
	for t := 0.0; t < seconds; t += step {
		w.Step(step)
	}
}

func TestPlayerFallsToFloor(t *testing.T) {
	w := NewWorld()
	if w.Grounded() {
		t.Fatal("player should spawn airborne")
	}

	settle(w, 1)

	if !w.Grounded() {
		t.Fatal("player should land within a second")
	}
	floorTop := float64(constant.ArenaHeight - constant.FloorHeight)
	if got := w.Player.Y + w.Player.H; got != floorTop {
		t.Errorf("player bottom = %f, want floor top %f", got, floorTop)
	}
	if w.Player.VY != 0 {
		t.Errorf("grounded player VY = %f, want 0", w.Player.VY)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	w := NewWorld()

	if w.Jump() {
		t.Error("jump mid-air should be refused")
	}

	settle(w, 1)
	if !w.Jump() {
		t.Fatal("jump from the floor should succeed")
	}
	if w.Player.VY != -constant.JumpForce {
		t.Errorf("VY after jump = %f, want %f", w.Player.VY, -constant.JumpForce)
	}
	if w.Jump() {
		t.Error("double jump should be refused")
	}
	if w.Jumps() != 1 {
		t.Errorf("Jumps = %d, want 1", w.Jumps())
	}
}

func TestJumpApex(t *testing.T) {
	w := NewWorld()
	settle(w, 1)
	startY := w.Player.Y

	w.Jump()
	minY := startY
	for i := 0; i < 120; i++ {
		w.Step(step)
		minY = math.Min(minY, w.Player.Y)
	}

	// v²/2g = 640²/4800 ≈ 85.3; discrete integration undershoots slightly
	rise := startY - minY
	want := constant.JumpForce * constant.JumpForce / (2 * constant.Gravity)
	if math.Abs(rise-want) > 5 {
		t.Errorf("jump rise = %f, want about %f", rise, want)
	}
	if !w.Grounded() {
		t.Error("player should be back on the floor after a second")
	}
}

func TestMoveHoldsThenStops(t *testing.T) {
	w := NewWorld()
	settle(w, 1)
	x0 := w.Player.X

	w.Move(1)
	settle(w, 0.5)

	moved := w.Player.X - x0
	want := constant.MoveSpeed * constant.MoveHoldSeconds
	if math.Abs(moved-want) > constant.MoveSpeed*step+1e-9 {
		t.Errorf("moved %f px, want about %f", moved, want)
	}

	x1 := w.Player.X
	settle(w, 0.2)
	if w.Player.X != x1 {
		t.Error("player kept moving after the hold window")
	}

	w.Move(-1)
	w.Move(0)
	settle(w, 0.2)
	if w.Player.X != x1 {
		t.Error("Move(0) should cancel motion")
	}
}

func TestArenaClamps(t *testing.T) {
	tests := []struct {
		name string
		dir  int
		want float64
	}{
		{"left wall", -1, 0},
		{"right wall", 1, constant.ArenaWidth - constant.PlayerWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			for i := 0; i < 600; i++ {
				w.Move(tt.dir)
				w.Step(1.0 / 60)
			}
			if w.Player.X != tt.want {
				t.Errorf("X = %f, want %f", w.Player.X, tt.want)
			}
		})
	}
}

func TestLandOnLedge(t *testing.T) {
	w := NewWorld()
	ledge := w.Platforms[1]
	w.Player.X = ledge.X + 10
	w.Player.Y = ledge.Y - w.Player.H - 40

	settle(w, 0.5)

	if !w.Grounded() {
		t.Fatal("player should rest on the ledge")
	}
	if got := w.Player.Y + w.Player.H; got != ledge.Y {
		t.Errorf("bottom = %f, want ledge top %f", got, ledge.Y)
	}
}

func TestLedgeIsOneWay(t *testing.T) {
	w := NewWorld()
	ledge := w.Platforms[1]
	w.Player.X = ledge.X + 10
	w.Player.Y = ledge.Y + ledge.H + 2
	w.Player.VY = -300

	w.Step(step)
	if w.Player.Y >= ledge.Y+ledge.H+2 {
		t.Error("player moving up should pass through the ledge underside")
	}
}

func TestResetAndNonPositiveStep(t *testing.T) {
	w := NewWorld()
	settle(w, 1)
	w.Move(1)

	w.Reset()
	if w.Player.X != constant.PlayerStartX || w.Player.Y != constant.PlayerStartY {
		t.Errorf("reset position = (%f,%f)", w.Player.X, w.Player.Y)
	}
	if w.Grounded() {
		t.Error("reset player should be airborne")
	}

	y := w.Player.Y
	w.Step(0)
	w.Step(-1)
	if w.Player.Y != y {
		t.Error("non-positive dt must not advance")
	}
}
