package mathnd

// Closest-point queries for points, lines, rays and segments in any number of
// dimensions. Lines and rays are given as a position and a direction that
// need not be normalized; segments as their two end points.

// maxBoxDimension is the largest dimension BoxVertices accepts. A box has
// 2^n vertices, so anything larger does not fit in an int index on 32-bit
// platforms and would not fit in memory anyway.
const maxBoxDimension = 30

// lineParameter returns the parameter t such that position + t*direction is
// closest to point. A zero direction gives 0.
func lineParameter(position, direction, point VectorN) float64 {
	lengthSquared := direction.LengthSquared()
	if IsZeroApprox(lengthSquared) {
		return 0
	}
	return point.Subtract(position).Dot(direction) / lengthSquared
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

// ClosestPointOnLine returns the point on the infinite line that is nearest
// to point.
func ClosestPointOnLine(linePosition, lineDirection, point VectorN) VectorN {
	t := lineParameter(linePosition, lineDirection, point)
	return linePosition.Add(lineDirection.MultiplyScalar(t))
}

// ClosestPointOnRay returns the point on the ray that is nearest to point.
func ClosestPointOnRay(rayOrigin, rayDirection, point VectorN) VectorN {
	t := max(lineParameter(rayOrigin, rayDirection, point), 0)
	return rayOrigin.Add(rayDirection.MultiplyScalar(t))
}

// ClosestPointOnLineSegment returns the point on the segment from a to b
// that is nearest to point.
func ClosestPointOnLineSegment(a, b, point VectorN) VectorN {
	direction := b.Subtract(a)
	t := clamp01(lineParameter(a, direction, point))
	return a.Add(direction.MultiplyScalar(t))
}

// lineLineParameters returns the parameters of the closest points of two
// infinite lines. ok is false when the lines are parallel or either
// direction is zero.
func lineLineParameters(position1, direction1, position2, direction2 VectorN) (s, t float64, ok bool) {
	r := position1.Subtract(position2)
	a := direction1.LengthSquared()
	b := direction1.Dot(direction2)
	c := direction1.Dot(r)
	e := direction2.LengthSquared()
	f := direction2.Dot(r)
	denom := a*e - b*b
	if IsZeroApprox(denom) {
		return 0, 0, false
	}
	return (b*f - c*e) / denom, (a*f - b*c) / denom, true
}

// ClosestPointsBetweenLines returns the closest pair of points on two
// infinite lines, the first on line 1 and the second on line 2. Parallel
// lines return position1 and the point on line 2 nearest to it.
func ClosestPointsBetweenLines(position1, direction1, position2, direction2 VectorN) (VectorN, VectorN) {
	s, t, ok := lineLineParameters(position1, direction1, position2, direction2)
	if !ok {
		return position1.Duplicate(), ClosestPointOnLine(position2, direction2, position1)
	}
	return position1.Add(direction1.MultiplyScalar(s)), position2.Add(direction2.MultiplyScalar(t))
}

// ClosestPointsBetweenLineAndSegment returns the closest pair of points on
// an infinite line and the segment from a to b.
func ClosestPointsBetweenLineAndSegment(linePosition, lineDirection, a, b VectorN) (VectorN, VectorN) {
	segment := b.Subtract(a)
	_, t, ok := lineLineParameters(linePosition, lineDirection, a, segment)
	if !ok {
		return linePosition.Duplicate(), ClosestPointOnLineSegment(a, b, linePosition)
	}
	onSegment := a.Add(segment.MultiplyScalar(clamp01(t)))
	return ClosestPointOnLine(linePosition, lineDirection, onSegment), onSegment
}

// ClosestPointsBetweenRays returns the closest pair of points on two rays.
// Parallel rays return one of the origins paired with the nearest point on
// the other ray.
func ClosestPointsBetweenRays(origin1, direction1, origin2, direction2 VectorN) (VectorN, VectorN) {
	s, t, ok := lineLineParameters(origin1, direction1, origin2, direction2)
	if ok && s >= 0 && t >= 0 {
		return origin1.Add(direction1.MultiplyScalar(s)), origin2.Add(direction2.MultiplyScalar(t))
	}
	// The minimum lies on a boundary: one of the rays at its origin.
	fromFirst := ClosestPointOnRay(origin2, direction2, origin1)
	fromSecond := ClosestPointOnRay(origin1, direction1, origin2)
	if origin1.DistanceSquaredTo(fromFirst) <= origin2.DistanceSquaredTo(fromSecond) {
		return origin1.Duplicate(), fromFirst
	}
	return fromSecond, origin2.Duplicate()
}

// ClosestPointsBetweenLineSegments returns the closest pair of points on
// the segments p1–q1 and p2–q2.
func ClosestPointsBetweenLineSegments(p1, q1, p2, q2 VectorN) (VectorN, VectorN) {
	d1 := q1.Subtract(p1)
	d2 := q2.Subtract(p2)
	r := p1.Subtract(p2)
	a := d1.LengthSquared()
	e := d2.LengthSquared()
	f := d2.Dot(r)

	var s, t float64
	switch {
	case IsZeroApprox(a) && IsZeroApprox(e):
		return p1.Duplicate(), p2.Duplicate()
	case IsZeroApprox(a):
		t = clamp01(f / e)
	default:
		c := d1.Dot(r)
		if IsZeroApprox(e) {
			s = clamp01(-c / a)
			break
		}
		b := d1.Dot(d2)
		if denom := a*e - b*b; !IsZeroApprox(denom) {
			s = clamp01((b*f - c*e) / denom)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clamp01(-c / a)
		} else if t > 1 {
			t = 1
			s = clamp01((b - c) / a)
		}
	}
	return p1.Add(d1.MultiplyScalar(s)), p2.Add(d2.MultiplyScalar(t))
}

// BoxVertices returns the 2^n corners of the box with the given size. Bit j
// of a vertex index selects the high side of axis j. When centered is true
// the box spans ±size/2, otherwise 0 to size.
func BoxVertices(size VectorN, centered bool) []VectorN {
	n := len(size)
	if guard(n > maxBoxDimension, "BoxVertices", "dimension too large", "dimension", n, "max", maxBoxDimension) {
		return nil
	}
	offset := Zero(n)
	if centered {
		offset = size.MultiplyScalar(-0.5)
	}
	vertices := make([]VectorN, 1<<n)
	for i := range vertices {
		vertex := offset.Duplicate()
		for axis := range n {
			if i&(1<<axis) != 0 {
				vertex[axis] += size[axis]
			}
		}
		vertices[i] = vertex
	}
	return vertices
}

// OrthoplexVertices returns the 2n vertices of the cross-polytope inscribed
// in a box of the given size: vertex 2i is +size[i]/2 on axis i and vertex
// 2i+1 is its opposite.
func OrthoplexVertices(size VectorN) []VectorN {
	n := len(size)
	vertices := make([]VectorN, 0, 2*n)
	for axis, s := range size {
		vertex := AxisVector(n, axis).MultiplyScalar(s / 2)
		vertices = append(vertices, vertex, vertex.Negate())
	}
	return vertices
}
