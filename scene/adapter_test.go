package scene

import (
	"testing"

	"github.com/lixenwraith/orrery/vmath"
)

func TestAdapterEmit(t *testing.T) {
	a := NewAdapter()
	mesh := &Node{ID: "p", Kind: KindMesh}
	light := &Node{ID: "p", Kind: KindLight}
	other := &Node{ID: "q", Kind: KindMesh}
	a.Bind("p", mesh)
	a.Bind("p", light)
	a.Bind("q", other)

	pos := vmath.Vec3F{X: 1, Z: 2}
	a.Emit("p", pos)
	a.Emit("unknown", pos)

	if mesh.Position != pos || light.Position != pos {
		t.Error("bound nodes not updated")
	}
	if (other.Position != vmath.Vec3F{}) {
		t.Error("unrelated node updated")
	}
	if a.Writes() != 2 {
		t.Errorf("Writes = %d, want 2", a.Writes())
	}
}

func TestAdapterReleaseIgnoresLaterEmits(t *testing.T) {
	a := NewAdapter()
	mesh := &Node{ID: "p", Kind: KindMesh}
	a.Bind("p", mesh)

	a.Release()
	a.Release()
	a.Emit("p", vmath.Vec3F{X: 5})
	a.Bind("p", mesh)

	if (mesh.Position != vmath.Vec3F{}) {
		t.Error("node written after Release")
	}
	if a.Bound() != 0 || !a.Released() {
		t.Error("adapter retained references after Release")
	}
}
