// Package scene provides the node tree that places wire meshes in
// N-dimensional space.
package scene

import (
	"errors"
	"image/color"
	"slices"

	"github.com/google/uuid"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/models"
)

// ErrCycle is returned when a node would become its own ancestor.
var ErrCycle = errors.New("node would become its own ancestor")

// DefaultColor is the edge color of nodes that do not set one.
var DefaultColor = color.RGBA{0, 255, 128, 255}

// Node is an element of the scene tree. Its Transform is relative to its
// parent.
type Node struct {
	ID        uuid.UUID
	Name      string
	Transform mathnd.Transform
	Visible   bool

	// Optional geometry
	Mesh  models.WireMesh
	Color color.RGBA

	parent   *Node
	children []*Node
}

// NewNode creates a visible node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		ID:      uuid.New(),
		Name:    name,
		Visible: true,
		Color:   DefaultColor,
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild attaches child to n, detaching it from its previous parent.
func (n *Node) AddChild(child *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Find returns the first node named name in depth-first order.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// GlobalTransform returns the transform from this node's space to the
// root's space.
func (n *Node) GlobalTransform() mathnd.Transform {
	if n.parent == nil {
		return n.Transform.Duplicate()
	}
	return n.parent.GlobalTransform().ComposeSquare(n.Transform)
}

// SetGlobalTransform sets the local transform so that the global transform
// becomes global. A singular parent leaves the transform unchanged.
func (n *Node) SetGlobalTransform(global mathnd.Transform) error {
	if n.parent == nil {
		n.Transform = global.Duplicate()
		return nil
	}
	inverse, err := n.parent.GlobalTransform().Inverse()
	if err != nil {
		return err
	}
	n.Transform = inverse.ComposeSquare(global)
	return nil
}

// IsVisibleInTree reports whether n and all of its ancestors are visible.
func (n *Node) IsVisibleInTree() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// Dimension returns the largest dimension used by the transforms and
// meshes in the subtree.
func (n *Node) Dimension() int {
	dim := 0
	n.Walk(func(node *Node) bool {
		dim = max(dim, node.Transform.Dimension())
		if node.Mesh != nil {
			dim = max(dim, node.Mesh.Dimension())
		}
		return true
	})
	return dim
}
