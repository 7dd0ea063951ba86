// Package scene is a renderer-agnostic scene graph with the adapter that maps
// simulation output onto it
package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/orrery/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInitFailed    = errors.New("scene initialization failed")
	ErrDisposed      = errors.New("scene disposed")
	ErrDuplicateNode = errors.New("duplicate node id")
)

// Kind discriminates node payloads
type Kind uint8

const (
	KindMesh Kind = iota
	KindLight
	KindCurve
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	case KindCurve:
		return "curve"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Node is a drawable element; positions are written by the adapter, the rest is fixed at creation
type Node struct {
	ID        string
	Kind      Kind
	Position  vmath.Vec3F
	Radius    float64        // mesh
	Intensity float64        // light
	Points    []vmath.Vec3F  // curve, closed polyline
	Color     colorful.Color // linear in sRGB space, as parsed
	Visible   bool
}

// Scene keeps nodes in insertion order
type Scene struct {
	nodes map[string]*Node
	order []*Node
}

func NewScene() *Scene {
	return &Scene{nodes: make(map[string]*Node)}
}

// Add inserts a node, IDs are unique per kind-qualified key
func (s *Scene) Add(n *Node) error {
	key := nodeKey(n.Kind, n.ID)
	if _, ok := s.nodes[key]; ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicateNode, n.Kind, n.ID)
	}
	s.nodes[key] = n
	s.order = append(s.order, n)
	return nil
}

// Node looks up a node by kind and ID
func (s *Scene) Node(kind Kind, id string) (*Node, bool) {
	n, ok := s.nodes[nodeKey(kind, id)]
	return n, ok
}

// Nodes returns nodes in insertion order, the slice must not be modified
func (s *Scene) Nodes() []*Node {
	return s.order
}

func (s *Scene) Len() int {
	return len(s.order)
}

// Clear drops every node reference
func (s *Scene) Clear() {
	clear(s.nodes)
	s.order = nil
}

func nodeKey(kind Kind, id string) string {
	return kind.String() + ":" + id
}
