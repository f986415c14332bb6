package render

import (
	"github.com/taigrr/tesseract/pkg/mathnd"
)

// Frustum is a set of clipping hyperplanes. Each plane's normal points
// inward, toward the visible region.
type Frustum struct {
	Planes []mathnd.Plane
}

// Frustum returns the camera-space clipping region for points of the given
// dimension: the near and far planes, plus one plane per extra axis that
// keeps points in front of the eye when DepthPerspective is on.
func (c *Camera) Frustum(dimension int) Frustum {
	n := max(dimension, 3)
	z := mathnd.AxisVector(n, 2)
	f := Frustum{Planes: []mathnd.Plane{
		{Normal: z.Negate(), Distance: c.Near}, // -z >= near
		{Normal: z, Distance: -c.Far},          // -z <= far
	}}
	if c.DepthPerspective {
		for axis := 3; axis < n; axis++ {
			// w <= DepthDistance - Near
			f.Planes = append(f.Planes, mathnd.Plane{
				Normal:   mathnd.AxisVector(n, axis).Negate(),
				Distance: c.Near - c.DepthDistance,
			})
		}
	}
	return f
}

// ndcFrustum is the [-1, 1] square in normalized device X and Y.
var ndcFrustum = Frustum{Planes: []mathnd.Plane{
	{Normal: mathnd.Vec(1, 0), Distance: -1},
	{Normal: mathnd.Vec(-1, 0), Distance: -1},
	{Normal: mathnd.Vec(0, 1), Distance: -1},
	{Normal: mathnd.Vec(0, -1), Distance: -1},
}}

// ContainsPoint tests if a point is inside every plane.
func (f Frustum) ContainsPoint(p mathnd.VectorN) bool {
	for _, plane := range f.Planes {
		if plane.DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}

// ClipSegment cuts the segment a-b down to the part inside every plane.
// ok is false when nothing is left.
func (f Frustum) ClipSegment(a, b mathnd.VectorN) (mathnd.VectorN, mathnd.VectorN, bool) {
	for _, plane := range f.Planes {
		da, db := plane.DistanceTo(a), plane.DistanceTo(b)
		switch {
		case da < 0 && db < 0:
			return nil, nil, false
		case da < 0:
			if p, ok := plane.IntersectLineSegment(a, b); ok {
				a = p
			}
		case db < 0:
			if p, ok := plane.IntersectLineSegment(a, b); ok {
				b = p
			}
		}
	}
	return a, b, true
}

// IntersectsRect tests if any part of the rect is inside the frustum.
// Uses the support point of each plane normal: if the corner furthest
// along the normal is outside, the whole rect is.
func (f Frustum) IntersectsRect(r mathnd.Rect) bool {
	for _, plane := range f.Planes {
		if plane.DistanceTo(r.Support(plane.Normal)) < 0 {
			return false
		}
	}
	return true
}

// ContainsRect tests if the rect is completely inside the frustum.
func (f Frustum) ContainsRect(r mathnd.Rect) bool {
	for _, plane := range f.Planes {
		if plane.DistanceTo(r.Support(plane.Normal.Negate())) < 0 {
			return false
		}
	}
	return true
}

// TransformRect returns the rect that bounds r after transformation by t.
func TransformRect(r mathnd.Rect, t mathnd.Transform) mathnd.Rect {
	corners := r.Vertices()
	for i, v := range corners {
		corners[i] = t.Xform(v)
	}
	return mathnd.RectFromPoints(corners)
}
