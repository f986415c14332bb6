package mathnd

import "fmt"

// Plane is a hyperplane: the set of points x with Normal·x = Distance.
// The normal is expected to be unit length for distances to be true
// distances; Normalized repairs one that is not.
type Plane struct {
	Normal   VectorN
	Distance float64
}

// PlaneFromNormalAndPoint returns the plane with the given normal passing
// through point.
func PlaneFromNormalAndPoint(normal, point VectorN) Plane {
	return Plane{Normal: normal.Duplicate(), Distance: normal.Dot(point)}
}

// PlaneFromPoints returns the hyperplane through points in the dimension of
// the longest point. The differences from the first point span the plane;
// differences that add nothing new are skipped and the span is filled up
// with unit axes, tried from the last axis to the first. The last column of
// the orthonormalized result is the normal.
//
// With fewer than dimension points the plane is one of many that fit. With
// more, only the first independent differences are used.
func PlaneFromPoints(points []VectorN) (Plane, error) {
	n := 0
	for _, p := range points {
		n = max(n, len(p))
	}
	if n == 0 {
		return Plane{}, opError(opPlaneFrom, ErrDegenerate)
	}

	var columns, ortho []VectorN
	add := func(column VectorN) {
		rest := reject(column, ortho)
		if rest.IsZeroApprox() {
			return
		}
		columns = append(columns, column)
		ortho = append(ortho, rest.Normalized())
	}
	for _, p := range points[1:] {
		if len(columns) == n-1 {
			break
		}
		add(p.Subtract(points[0]).WithDimension(n))
	}
	for axis := n - 1; axis >= 0 && len(columns) < n; axis-- {
		add(AxisVector(n, axis))
	}

	basis := Basis(columns)
	if len(columns) < n || IsZeroApprox(basis.Determinant()) {
		return Plane{}, opError(opPlaneFrom, ErrDegenerate)
	}
	normal := basis.Orthonormalized()[n-1]
	return Plane{Normal: normal, Distance: normal.Dot(points[0])}, nil
}

// Dimension returns the length of the normal.
func (p Plane) Dimension() int {
	return len(p.Normal)
}

// Normalized returns p with a unit normal and the distance scaled to
// match. A zero normal gives the zero plane.
func (p Plane) Normalized() Plane {
	length := p.Normal.Length()
	if length == 0 {
		return Plane{}
	}
	return Plane{Normal: p.Normal.DivideScalar(length), Distance: p.Distance / length}
}

// Center returns the point of the plane closest to the origin.
func (p Plane) Center() VectorN {
	return p.Normal.MultiplyScalar(p.Distance)
}

// DistanceTo returns the signed distance from the plane to point. It is
// positive on the side the normal points to.
func (p Plane) DistanceTo(point VectorN) float64 {
	return p.Normal.Dot(point) - p.Distance
}

// IsPointOver reports whether point is strictly on the normal side.
func (p Plane) IsPointOver(point VectorN) bool {
	return p.Normal.Dot(point) > p.Distance
}

// HasPoint reports whether point lies within tolerance of the plane.
func (p Plane) HasPoint(point VectorN, tolerance float64) bool {
	d := p.DistanceTo(point)
	return d <= tolerance && d >= -tolerance
}

// Project returns the orthogonal projection of point onto the plane.
func (p Plane) Project(point VectorN) VectorN {
	return point.Subtract(p.Normal.MultiplyScalar(p.DistanceTo(point)))
}

// crossing returns t such that position + t*direction lies on the
// plane. ok is false when direction is parallel to the plane.
func (p Plane) crossing(position, direction VectorN) (t float64, ok bool) {
	den := p.Normal.Dot(direction)
	if IsZeroApprox(den) {
		return 0, false
	}
	return (p.Distance - p.Normal.Dot(position)) / den, true
}

// IntersectLine returns where the infinite line crosses the plane.
func (p Plane) IntersectLine(position, direction VectorN) (VectorN, bool) {
	t, ok := p.crossing(position, direction)
	if !ok {
		return nil, false
	}
	return position.Add(direction.MultiplyScalar(t)), true
}

// IntersectRay returns where the ray crosses the plane. It reports false
// when the ray is parallel or points away.
func (p Plane) IntersectRay(origin, direction VectorN) (VectorN, bool) {
	t, ok := p.crossing(origin, direction)
	if !ok || t < 0 {
		return nil, false
	}
	return origin.Add(direction.MultiplyScalar(t)), true
}

// IntersectLineSegment returns where the segment from a to b crosses the
// plane.
func (p Plane) IntersectLineSegment(a, b VectorN) (VectorN, bool) {
	direction := b.Subtract(a)
	t, ok := p.crossing(a, direction)
	if !ok || t < 0 || t > 1 {
		return nil, false
	}
	return a.Add(direction.MultiplyScalar(t)), true
}

// Flipped returns the same plane facing the other way.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Negate(), Distance: -p.Distance}
}

// IsEqualApprox reports whether a and b are approximately equal.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Plane) IsEqualApprox(b Plane) bool {
	return a.Normal.IsEqualApprox(b.Normal) && IsEqualApprox(a.Distance, b.Distance)
}

func (p Plane) String() string {
	return fmt.Sprintf("[N: %s, D: %g]", p.Normal, p.Distance)
}
