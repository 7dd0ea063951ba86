package scene

import (
	"sync"

	"github.com/lixenwraith/orrery/vmath"
)

// Adapter translates (bodyID, position) pairs into node position writes
// After Release it holds no node references and ignores further positions
type Adapter struct {
	mu       sync.Mutex
	nodes    map[string][]*Node
	released bool
	writes   uint64
}

func NewAdapter() *Adapter {
	return &Adapter{nodes: make(map[string][]*Node)}
}

// Bind attaches a node to a body; a body may drive several nodes (mesh and light)
func (a *Adapter) Bind(id string, n *Node) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}
	a.nodes[id] = append(a.nodes[id], n)
}

// Emit implements orbit.Sink
func (a *Adapter) Emit(id string, pos vmath.Vec3F) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}
	for _, n := range a.nodes[id] {
		n.Position = pos
		a.writes++
	}
}

// Release drops all node references, safe to call repeatedly
func (a *Adapter) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.released = true
	a.nodes = nil
}

func (a *Adapter) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Bound returns the count of node references held
func (a *Adapter) Bound() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, nodes := range a.nodes {
		n += len(nodes)
	}
	return n
}

// Writes returns the count of node position writes
func (a *Adapter) Writes() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.writes
}
