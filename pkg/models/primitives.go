package models

import (
	"github.com/taigrr/tesseract/pkg/mathnd"
)

// BoxWireMesh is an axis-aligned box centered on the origin: a square in
// 2D, a cube in 3D, a tesseract in 4D.
type BoxWireMesh struct {
	Size mathnd.VectorN
}

// NewBoxWireMesh returns a box with the given size.
func NewBoxWireMesh(size mathnd.VectorN) *BoxWireMesh {
	return &BoxWireMesh{Size: size.Duplicate()}
}

// Dimension returns the number of axes.
func (b *BoxWireMesh) Dimension() int {
	return len(b.Size)
}

// HalfExtents returns half the size on each axis.
func (b *BoxWireMesh) HalfExtents() mathnd.VectorN {
	return b.Size.MultiplyScalar(0.5)
}

// Vertices returns the 2^n corners. Bit j of a vertex index selects the
// positive side of axis j.
func (b *BoxWireMesh) Vertices() []mathnd.VectorN {
	return mathnd.BoxVertices(b.Size, true)
}

// EdgeIndices joins every pair of corners that differ on exactly one axis.
func (b *BoxWireMesh) EdgeIndices() []int {
	n := len(b.Size)
	count := len(b.Vertices())
	if count == 0 {
		return nil
	}
	edges := make([]int, 0, n*count)
	for i := range count {
		for axis := range n {
			if j := i | 1<<axis; j != i {
				edges = append(edges, i, j)
			}
		}
	}
	return edges
}

// Bounds returns the box itself.
func (b *BoxWireMesh) Bounds() mathnd.Rect {
	return mathnd.Rect{Position: b.HalfExtents().Negate(), Size: b.Size.Duplicate()}
}

// OrthoplexWireMesh is the cross-polytope inscribed in a box of the given
// size: a diamond in 2D, an octahedron in 3D, a 16-cell in 4D.
type OrthoplexWireMesh struct {
	Size mathnd.VectorN
}

// NewOrthoplexWireMesh returns an orthoplex with the given size.
func NewOrthoplexWireMesh(size mathnd.VectorN) *OrthoplexWireMesh {
	return &OrthoplexWireMesh{Size: size.Duplicate()}
}

// Dimension returns the number of axes.
func (o *OrthoplexWireMesh) Dimension() int {
	return len(o.Size)
}

// Vertices returns the 2n tips, two per axis.
func (o *OrthoplexWireMesh) Vertices() []mathnd.VectorN {
	return mathnd.OrthoplexVertices(o.Size)
}

// EdgeIndices joins every pair of tips except opposite tips on the same
// axis.
func (o *OrthoplexWireMesh) EdgeIndices() []int {
	count := 2 * len(o.Size)
	var edges []int
	for i := range count {
		for j := i + 1; j < count; j++ {
			if i/2 != j/2 {
				edges = append(edges, i, j)
			}
		}
	}
	return edges
}

// Bounds returns the box the orthoplex is inscribed in.
func (o *OrthoplexWireMesh) Bounds() mathnd.Rect {
	return mathnd.Rect{Position: o.Size.MultiplyScalar(-0.5), Size: o.Size.Duplicate()}
}
