package mathnd

import (
	"math"
	"strconv"
	"strings"
)

// VectorN is a vector with any number of dimensions.
//
// Binary operations between vectors of different lengths treat the missing
// entries of the shorter vector as zero.
type VectorN []float64

// Vec creates a VectorN from its components.
func Vec(components ...float64) VectorN {
	return VectorN(components).Duplicate()
}

// Zero returns the zero vector with n dimensions.
func Zero(n int) VectorN {
	if guard(n < 0, "Zero", "negative dimension", "dimension", n) {
		return VectorN{}
	}
	return make(VectorN, n)
}

// Fill returns a vector with n dimensions all set to value.
func Fill(n int, value float64) VectorN {
	if guard(n < 0, "Fill", "negative dimension", "dimension", n) {
		return VectorN{}
	}
	v := make(VectorN, n)
	for i := range v {
		v[i] = value
	}
	return v
}

// AxisVector returns the unit vector along axis, with at least n dimensions.
func AxisVector(n, axis int) VectorN {
	if guard(axis < 0, "AxisVector", "negative axis", "axis", axis) {
		return Zero(n)
	}
	v := make(VectorN, max(n, axis+1))
	v[axis] = 1
	return v
}

// Duplicate returns a copy of v that does not share storage with it.
func (v VectorN) Duplicate() VectorN {
	if v == nil {
		return VectorN{}
	}
	return append(VectorN(make([]float64, 0, len(v))), v...)
}

// Dimension returns the number of components in v.
func (v VectorN) Dimension() int {
	return len(v)
}

// ValueOnAxis returns the component on axis, or 0 if v does not reach it.
func (v VectorN) ValueOnAxis(axis int) float64 {
	if axis < 0 || axis >= len(v) {
		return 0
	}
	return v[axis]
}

// elementwise applies fn over n entries, zero-padding both operands.
func elementwise(a, b VectorN, n int, fn func(x, y float64) float64) VectorN {
	result := make(VectorN, n)
	for i := range n {
		result[i] = fn(a.ValueOnAxis(i), b.ValueOnAxis(i))
	}
	return result
}

// Add returns the vector sum a + b.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a VectorN) Add(b VectorN) VectorN {
	return elementwise(a, b, max(len(a), len(b)), func(x, y float64) float64 { return x + y })
}

// Subtract returns the vector difference a - b.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a VectorN) Subtract(b VectorN) VectorN {
	return elementwise(a, b, max(len(a), len(b)), func(x, y float64) float64 { return x - y })
}

// MultiplyVector returns the component-wise product a * b.
// The result has the length of the longer operand if expand is set, and of
// the shorter one otherwise.
//
//nolint:st1016 // a*b naming convention is clearer for vector operations
func (a VectorN) MultiplyVector(b VectorN, expand bool) VectorN {
	n := min(len(a), len(b))
	if expand {
		n = max(len(a), len(b))
	}
	return elementwise(a, b, n, func(x, y float64) float64 { return x * y })
}

// DivideVector returns the component-wise quotient a / b.
// With expand set, divisor entries past the end of b count as 1.
//
//nolint:st1016 // a/b naming convention is clearer for vector operations
func (a VectorN) DivideVector(b VectorN, expand bool) VectorN {
	n := min(len(a), len(b))
	if expand {
		n = max(len(a), len(b))
	}
	result := make(VectorN, n)
	for i := range n {
		divisor := 1.0
		if i < len(b) {
			divisor = b[i]
		}
		result[i] = a.ValueOnAxis(i) / divisor
	}
	return result
}

// AddScalar adds s to every component.
func (v VectorN) AddScalar(s float64) VectorN {
	return v.apply(func(x float64) float64 { return x + s })
}

// MultiplyScalar returns the scalar product v * s.
func (v VectorN) MultiplyScalar(s float64) VectorN {
	return v.apply(func(x float64) float64 { return x * s })
}

// DivideScalar returns the scalar division v / s.
func (v VectorN) DivideScalar(s float64) VectorN {
	return v.apply(func(x float64) float64 { return x / s })
}

// Negate returns the negated vector.
func (v VectorN) Negate() VectorN {
	return v.apply(func(x float64) float64 { return -x })
}

// Abs returns the component-wise absolute value.
func (v VectorN) Abs() VectorN {
	return v.apply(math.Abs)
}

// Floor returns the component-wise floor.
func (v VectorN) Floor() VectorN {
	return v.apply(math.Floor)
}

// Ceil returns the component-wise ceiling.
func (v VectorN) Ceil() VectorN {
	return v.apply(math.Ceil)
}

// Round returns the component-wise rounding, half away from zero.
func (v VectorN) Round() VectorN {
	return v.apply(math.Round)
}

// Sign returns -1, 0 or 1 for each component.
func (v VectorN) Sign() VectorN {
	return v.apply(func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})
}

// Inverse returns the component-wise reciprocal.
// Zero components stay zero.
func (v VectorN) Inverse() VectorN {
	return v.apply(func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return 1 / x
	})
}

func (v VectorN) apply(fn func(float64) float64) VectorN {
	result := make(VectorN, len(v))
	for i, x := range v {
		result[i] = fn(x)
	}
	return result
}

// Dot returns the dot product a · b.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a VectorN) Dot(b VectorN) float64 {
	var sum float64
	for i := range min(len(a), len(b)) {
		sum += a[i] * b[i]
	}
	return sum
}

// Length returns the Euclidean length of v.
func (v VectorN) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared length (faster, no sqrt).
func (v VectorN) LengthSquared() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum
}

// Normalized returns the unit vector in the same direction.
// A zero-length vector is returned unchanged; callers that need a unit
// vector must check for it.
func (v VectorN) Normalized() VectorN {
	l := v.Length()
	if l == 0 {
		return v.Duplicate()
	}
	return v.DivideScalar(l)
}

// IsNormalized reports whether v has unit length.
func (v VectorN) IsNormalized() bool {
	return IsEqualApprox(v.LengthSquared(), 1)
}

// IsZeroApprox reports whether every component is approximately zero.
func (v VectorN) IsZeroApprox() bool {
	for _, x := range v {
		if !IsZeroApprox(x) {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component is finite.
func (v VectorN) IsFinite() bool {
	for _, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// IsUniform reports whether every component has the same value.
func (v VectorN) IsUniform() bool {
	for _, x := range v {
		if !IsEqualApprox(x, v[0]) {
			return false
		}
	}
	return true
}

// DistanceTo returns the distance between two points.
func (a VectorN) DistanceTo(b VectorN) float64 {
	return b.Subtract(a).Length()
}

// DistanceSquaredTo returns the squared distance between two points.
func (a VectorN) DistanceSquaredTo(b VectorN) float64 {
	return b.Subtract(a).LengthSquared()
}

// DirectionTo returns the normalized direction from a towards b.
func (a VectorN) DirectionTo(b VectorN) VectorN {
	return b.Subtract(a).Normalized()
}

// AngleTo returns the unsigned angle between a and b in radians.
func (a VectorN) AngleTo(b VectorN) float64 {
	denominator := math.Sqrt(a.LengthSquared() * b.LengthSquared())
	if denominator == 0 {
		return 0
	}
	return math.Acos(math.Max(-1, math.Min(1, a.Dot(b)/denominator)))
}

// Project returns the projection of v onto onNormal.
// The result has the length of onNormal; a zero normal projects to zero.
func (v VectorN) Project(onNormal VectorN) VectorN {
	lenSq := onNormal.LengthSquared()
	if lenSq == 0 {
		return Zero(len(onNormal))
	}
	return onNormal.MultiplyScalar(v.Dot(onNormal) / lenSq)
}

// Reflect returns v mirrored about the line through normal, which should be
// normalized.
func (v VectorN) Reflect(normal VectorN) VectorN {
	return normal.MultiplyScalar(2 * v.Dot(normal)).Subtract(v)
}

// Bounce returns v bounced off the hyperplane perpendicular to normal.
func (v VectorN) Bounce(normal VectorN) VectorN {
	return v.Reflect(normal).Negate()
}

// Slide returns v with its component along normal removed.
func (v VectorN) Slide(normal VectorN) VectorN {
	return v.Subtract(normal.MultiplyScalar(v.Dot(normal)))
}

// Lerp returns the linear interpolation between a and b by weight.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a VectorN) Lerp(b VectorN, weight float64) VectorN {
	return elementwise(a, b, max(len(a), len(b)), func(x, y float64) float64 {
		return x + (y-x)*weight
	})
}

// MoveToward moves a towards b by at most delta.
func (a VectorN) MoveToward(b VectorN, delta float64) VectorN {
	diff := b.Subtract(a)
	l := diff.Length()
	if l <= delta || l < Epsilon {
		return elementwise(b, nil, max(len(a), len(b)), func(x, _ float64) float64 { return x })
	}
	return a.Add(diff.MultiplyScalar(delta / l))
}

// LimitLength returns v scaled down so its length is at most maxLength.
func (v VectorN) LimitLength(maxLength float64) VectorN {
	l := v.Length()
	if l > 0 && maxLength < l {
		return v.MultiplyScalar(maxLength / l)
	}
	return v.Duplicate()
}

// WithLength returns v rescaled to the given length.
// A zero vector stays zero.
func (v VectorN) WithLength(length float64) VectorN {
	return v.Normalized().MultiplyScalar(length)
}

// Clamp clamps each component between the matching components of lo and hi.
func (v VectorN) Clamp(lo, hi VectorN) VectorN {
	n := max(len(v), len(lo), len(hi))
	result := make(VectorN, n)
	for i := range n {
		result[i] = math.Max(lo.ValueOnAxis(i), math.Min(hi.ValueOnAxis(i), v.ValueOnAxis(i)))
	}
	return result
}

// Clampf clamps each component between lo and hi.
func (v VectorN) Clampf(lo, hi float64) VectorN {
	return v.apply(func(x float64) float64 { return math.Max(lo, math.Min(hi, x)) })
}

// Snapped rounds each component to the nearest multiple of the matching
// component of step.
func (v VectorN) Snapped(step VectorN) VectorN {
	return elementwise(v, step, max(len(v), len(step)), Snapped)
}

// Snappedf rounds each component to the nearest multiple of step.
func (v VectorN) Snappedf(step float64) VectorN {
	return v.apply(func(x float64) float64 { return Snapped(x, step) })
}

// Posmod returns the non-negative modulus of each component by mod.
func (v VectorN) Posmod(mod float64) VectorN {
	return v.apply(func(x float64) float64 { return Posmod(x, mod) })
}

// Posmodv returns the non-negative modulus of each component by the
// matching component of mod. The result has the length of v.
func (v VectorN) Posmodv(mod VectorN) VectorN {
	result := make(VectorN, len(v))
	for i, x := range v {
		result[i] = Posmod(x, mod.ValueOnAxis(i))
	}
	return result
}

// MaxAxisIndex returns the index of the largest component, or -1 if v is
// empty.
func (v VectorN) MaxAxisIndex() int {
	index := -1
	for i, x := range v {
		if index < 0 || x > v[index] {
			index = i
		}
	}
	return index
}

// MinAxisIndex returns the index of the smallest component, or -1 if v is
// empty.
func (v VectorN) MinAxisIndex() int {
	index := -1
	for i, x := range v {
		if index < 0 || x < v[index] {
			index = i
		}
	}
	return index
}

// WithDimension returns v truncated or zero-extended to n dimensions.
func (v VectorN) WithDimension(n int) VectorN {
	if guard(n < 0, "WithDimension", "negative dimension", "dimension", n) {
		return v.Duplicate()
	}
	result := make(VectorN, n)
	copy(result, v)
	return result
}

// DropFirstDimensions returns v without its first n components.
func (v VectorN) DropFirstDimensions(n int) VectorN {
	if n <= 0 {
		return v.Duplicate()
	}
	if n >= len(v) {
		return VectorN{}
	}
	return v[n:].Duplicate()
}

// IsEqualApprox compares a and b over the union of their lengths, treating
// missing entries as zero.
func (a VectorN) IsEqualApprox(b VectorN) bool {
	for i := range max(len(a), len(b)) {
		if !IsEqualApprox(a.ValueOnAxis(i), b.ValueOnAxis(i)) {
			return false
		}
	}
	return true
}

// IsEqualExact compares a and b exactly over the union of their lengths,
// treating missing entries as zero.
func (a VectorN) IsEqualExact(b VectorN) bool {
	for i := range max(len(a), len(b)) {
		if a.ValueOnAxis(i) != b.ValueOnAxis(i) {
			return false
		}
	}
	return true
}

// String returns v formatted as "(x, y, ...)".
func (v VectorN) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
