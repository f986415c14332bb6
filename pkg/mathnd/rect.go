package mathnd

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned box given by its minimum corner and its size.
// Position and Size may have different lengths; missing entries read as 0.
// Operations between rects of different dimension use the smaller one when
// they ask about overlap and the larger one when they cover both.
type Rect struct {
	Position VectorN
	Size     VectorN
}

// RectFromPoints returns the smallest rect containing every point.
func RectFromPoints(points []VectorN) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Position: points[0].Duplicate(), Size: Zero(len(points[0]))}
	for _, p := range points[1:] {
		r = r.Expand(p)
	}
	return r
}

// Dimension returns the larger of the position and size lengths.
func (r Rect) Dimension() int {
	return max(len(r.Position), len(r.Size))
}

// Abs returns r with every negative size flipped, keeping the same region.
func (r Rect) Abs() Rect {
	n := r.Dimension()
	position := r.Position.WithDimension(n)
	size := r.Size.WithDimension(n)
	for i, s := range size {
		if s < 0 {
			position[i] += s
			size[i] = -s
		}
	}
	return Rect{Position: position, Size: size}
}

// End returns the maximum corner.
func (r Rect) End() VectorN {
	return r.Position.Add(r.Size)
}

// Center returns the middle of the rect.
func (r Rect) Center() VectorN {
	return r.Position.Add(r.Size.MultiplyScalar(0.5))
}

// Volume returns the product of the sizes. A rect with no dimensions has
// zero volume.
func (r Rect) Volume() float64 {
	n := r.Dimension()
	if n == 0 {
		return 0
	}
	volume := 1.0
	for i := range n {
		volume *= r.Size.ValueOnAxis(i)
	}
	return volume
}

// HasVolume reports whether every size is positive.
func (r Rect) HasVolume() bool {
	n := r.Dimension()
	for i := range n {
		if r.Size.ValueOnAxis(i) <= 0 {
			return false
		}
	}
	return n > 0
}

// HasPoint reports whether point lies inside r or on its boundary.
func (r Rect) HasPoint(point VectorN) bool {
	for i := range r.Dimension() {
		lo := r.Position.ValueOnAxis(i)
		x := point.ValueOnAxis(i)
		if x < lo || x > lo+r.Size.ValueOnAxis(i) {
			return false
		}
	}
	return true
}

// Encloses reports whether other lies entirely inside r, over the larger
// of the two dimensions.
func (r Rect) Encloses(other Rect) bool {
	for i := range max(r.Dimension(), other.Dimension()) {
		lo, otherLo := r.Position.ValueOnAxis(i), other.Position.ValueOnAxis(i)
		hi := lo + r.Size.ValueOnAxis(i)
		otherHi := otherLo + other.Size.ValueOnAxis(i)
		if otherLo < lo || otherHi > hi {
			return false
		}
	}
	return true
}

// Intersects reports whether r and other overlap with positive volume on
// every axis they share.
func (r Rect) Intersects(other Rect) bool {
	for i := range min(r.Dimension(), other.Dimension()) {
		lo, otherLo := r.Position.ValueOnAxis(i), other.Position.ValueOnAxis(i)
		hi := lo + r.Size.ValueOnAxis(i)
		otherHi := otherLo + other.Size.ValueOnAxis(i)
		if lo >= otherHi || otherLo >= hi {
			return false
		}
	}
	return true
}

// Intersection returns the overlap of r and other on the axes they share.
// Disjoint rects give the empty Rect.
func (r Rect) Intersection(other Rect) Rect {
	n := min(r.Dimension(), other.Dimension())
	position := make(VectorN, n)
	size := make(VectorN, n)
	for i := range n {
		lo := math.Max(r.Position.ValueOnAxis(i), other.Position.ValueOnAxis(i))
		hi := math.Min(
			r.Position.ValueOnAxis(i)+r.Size.ValueOnAxis(i),
			other.Position.ValueOnAxis(i)+other.Size.ValueOnAxis(i),
		)
		if hi < lo {
			return Rect{}
		}
		position[i] = lo
		size[i] = hi - lo
	}
	return Rect{Position: position, Size: size}
}

// Merge returns the smallest rect containing both r and other, over the
// larger of the two dimensions.
func (r Rect) Merge(other Rect) Rect {
	n := max(r.Dimension(), other.Dimension())
	position := make(VectorN, n)
	size := make(VectorN, n)
	for i := range n {
		lo := math.Min(r.Position.ValueOnAxis(i), other.Position.ValueOnAxis(i))
		hi := math.Max(
			r.Position.ValueOnAxis(i)+r.Size.ValueOnAxis(i),
			other.Position.ValueOnAxis(i)+other.Size.ValueOnAxis(i),
		)
		position[i] = lo
		size[i] = hi - lo
	}
	return Rect{Position: position, Size: size}
}

// Grow returns r enlarged by amount on every side.
func (r Rect) Grow(amount float64) Rect {
	n := r.Dimension()
	return Rect{
		Position: r.Position.WithDimension(n).AddScalar(-amount),
		Size:     r.Size.WithDimension(n).AddScalar(2 * amount),
	}
}

// Expand returns r grown to include point.
func (r Rect) Expand(point VectorN) Rect {
	return r.Merge(Rect{Position: point, Size: Zero(len(point))})
}

// Support returns the corner of r furthest along direction.
func (r Rect) Support(direction VectorN) VectorN {
	n := max(r.Dimension(), len(direction))
	support := make(VectorN, n)
	for i := range n {
		support[i] = r.Position.ValueOnAxis(i)
		if direction.ValueOnAxis(i) > 0 {
			support[i] += r.Size.ValueOnAxis(i)
		}
	}
	return support
}

// Vertices returns the 2^n corners of r in BoxVertices order.
func (r Rect) Vertices() []VectorN {
	n := r.Dimension()
	vertices := BoxVertices(r.Size.WithDimension(n), false)
	for i, v := range vertices {
		vertices[i] = v.Add(r.Position)
	}
	return vertices
}

// IsEqualApprox reports whether a and b are approximately equal.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Rect) IsEqualApprox(b Rect) bool {
	return a.Position.IsEqualApprox(b.Position) && a.Size.IsEqualApprox(b.Size)
}

func (r Rect) String() string {
	return fmt.Sprintf("[P: %s, S: %s]", r.Position, r.Size)
}
