// Package models provides N-dimensional wire meshes for Tesseract.
package models

import (
	"github.com/taigrr/tesseract/pkg/mathnd"
)

// WireMesh is a set of vertices joined by straight edges.
type WireMesh interface {
	// Dimension returns the number of axes the vertices live in.
	Dimension() int
	// Vertices returns every vertex position.
	Vertices() []mathnd.VectorN
	// EdgeIndices returns vertex index pairs, two entries per edge.
	EdgeIndices() []int
	// Bounds returns the axis-aligned bounding rect of the vertices.
	Bounds() mathnd.Rect
}

// ArrayWireMesh is a wire mesh with explicitly listed vertices and edges.
type ArrayWireMesh struct {
	Name string

	vertices []mathnd.VectorN
	edges    []int
	edgeSet  map[[2]int]struct{}

	// Bounding rect (calculated on load)
	bounds mathnd.Rect
}

// NewArrayWireMesh creates an empty mesh.
func NewArrayWireMesh(name string) *ArrayWireMesh {
	return &ArrayWireMesh{
		Name:     name,
		vertices: make([]mathnd.VectorN, 0),
		edges:    make([]int, 0),
		edgeSet:  make(map[[2]int]struct{}),
	}
}

// ArrayWireMeshFrom copies the vertices and edges of any wire mesh.
func ArrayWireMeshFrom(name string, mesh WireMesh) *ArrayWireMesh {
	m := NewArrayWireMesh(name)
	for _, v := range mesh.Vertices() {
		m.AddVertex(v)
	}
	edges := mesh.EdgeIndices()
	for i := 0; i+1 < len(edges); i += 2 {
		m.AddEdge(edges[i], edges[i+1])
	}
	m.CalculateBounds()
	return m
}

// AddVertex appends a vertex and returns its index.
func (m *ArrayWireMesh) AddVertex(v mathnd.VectorN) int {
	m.vertices = append(m.vertices, v.Duplicate())
	return len(m.vertices) - 1
}

// AddEdge joins vertices a and b. Self-loops, out of range indices and
// edges that already exist in either direction are ignored. It reports
// whether the edge was added.
func (m *ArrayWireMesh) AddEdge(a, b int) bool {
	if a == b || a < 0 || b < 0 || a >= len(m.vertices) || b >= len(m.vertices) {
		return false
	}
	key := [2]int{min(a, b), max(a, b)}
	if _, ok := m.edgeSet[key]; ok {
		return false
	}
	m.edgeSet[key] = struct{}{}
	m.edges = append(m.edges, a, b)
	return true
}

// Dimension returns the length of the longest vertex.
func (m *ArrayWireMesh) Dimension() int {
	n := 0
	for _, v := range m.vertices {
		n = max(n, len(v))
	}
	return n
}

// Vertices returns the vertex positions. The slice is shared with the mesh.
func (m *ArrayWireMesh) Vertices() []mathnd.VectorN {
	return m.vertices
}

// EdgeIndices returns the edge vertex pairs. The slice is shared with the
// mesh.
func (m *ArrayWireMesh) EdgeIndices() []int {
	return m.edges
}

// Bounds returns the bounding rect computed by the last CalculateBounds.
func (m *ArrayWireMesh) Bounds() mathnd.Rect {
	return m.bounds
}

// CalculateBounds computes the axis-aligned bounding rect.
func (m *ArrayWireMesh) CalculateBounds() {
	m.bounds = mathnd.RectFromPoints(m.vertices)
}

// VertexCount returns the number of vertices.
func (m *ArrayWireMesh) VertexCount() int {
	return len(m.vertices)
}

// EdgeCount returns the number of edges.
func (m *ArrayWireMesh) EdgeCount() int {
	return len(m.edges) / 2
}

// Transform applies t to all vertices.
func (m *ArrayWireMesh) Transform(t mathnd.Transform) {
	for i, v := range m.vertices {
		m.vertices[i] = t.Xform(v)
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *ArrayWireMesh) Clone() *ArrayWireMesh {
	clone := &ArrayWireMesh{
		Name:     m.Name,
		vertices: make([]mathnd.VectorN, len(m.vertices)),
		edges:    make([]int, len(m.edges)),
		edgeSet:  make(map[[2]int]struct{}, len(m.edgeSet)),
		bounds:   mathnd.Rect{Position: m.bounds.Position.Duplicate(), Size: m.bounds.Size.Duplicate()},
	}
	for i, v := range m.vertices {
		clone.vertices[i] = v.Duplicate()
	}
	copy(clone.edges, m.edges)
	for k := range m.edgeSet {
		clone.edgeSet[k] = struct{}{}
	}
	return clone
}
