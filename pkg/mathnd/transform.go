package mathnd

// Transform is an N-dimensional affine transform: a Basis for the linear
// part plus an Origin for translation.
type Transform struct {
	Basis  Basis
	Origin VectorN
}

// IdentityTransform returns the identity transform with n dimensions.
func IdentityTransform(n int) Transform {
	return Transform{Basis: IdentityBasis(n), Origin: Zero(n)}
}

// FromPosition returns a pure translation.
func FromPosition(origin VectorN) Transform {
	return Transform{Basis: IdentityBasis(len(origin)), Origin: origin.Duplicate()}
}

// FromPositionRotation returns a translation combined with the rotation
// described by rotation.
func FromPositionRotation(origin VectorN, rotation Euler) Transform {
	return Transform{Basis: rotation.ToRotationBasis(), Origin: origin.Duplicate()}
}

// FromPositionScale returns a translation combined with a scale.
func FromPositionScale(origin, scale VectorN) Transform {
	return Transform{Basis: FromScale(scale), Origin: origin.Duplicate()}
}

// FromPositionRotationScale returns the transform that scales, then
// rotates, then translates.
func FromPositionRotationScale(origin VectorN, rotation Euler, scale VectorN) Transform {
	return Transform{
		Basis:  rotation.ToRotationBasis().ComposeExpand(FromScale(scale)),
		Origin: origin.Duplicate(),
	}
}

// Duplicate returns a deep copy of t.
func (t Transform) Duplicate() Transform {
	return Transform{Basis: t.Basis.Duplicate(), Origin: t.Origin.Duplicate()}
}

// Dimension returns the larger of the basis dimension and the origin
// dimension.
func (t Transform) Dimension() int {
	return max(t.Basis.Dimension(), len(t.Origin))
}

// WithDimension returns t resized to n dimensions. The basis becomes n×n
// and the origin is truncated or zero-extended.
func (t Transform) WithDimension(n int) Transform {
	if guard(n < 0, opDimension, "negative dimension", "dimension", n) {
		return t.Duplicate()
	}
	return Transform{Basis: t.Basis.WithDimension(n), Origin: t.Origin.WithDimension(n)}
}

// SetDimension resizes t in place to n dimensions.
func (t *Transform) SetDimension(n int) {
	*t = t.WithDimension(n)
}

// Xform transforms the point v: Origin + Basis·v.
func (t Transform) Xform(v VectorN) VectorN {
	return t.Basis.Xform(v).Add(t.Origin)
}

// XformBasis transforms the direction v, ignoring the origin.
func (t Transform) XformBasis(v VectorN) VectorN {
	return t.Basis.Xform(v)
}

// XformInverse transforms the point v by the inverse of t.
func (t Transform) XformInverse(v VectorN) (VectorN, error) {
	inverse, err := t.Inverse()
	if err != nil {
		return v.Duplicate(), err
	}
	return inverse.Xform(v), nil
}

// TranslatedGlobal returns t moved by offset in parent space.
func (t Transform) TranslatedGlobal(offset VectorN) Transform {
	return Transform{Basis: t.Basis.Duplicate(), Origin: t.Origin.Add(offset)}
}

// TranslatedLocal returns t moved by offset in its own space, so the offset
// follows the current rotation and scale.
func (t Transform) TranslatedLocal(offset VectorN) Transform {
	return Transform{Basis: t.Basis.Duplicate(), Origin: t.Origin.Add(t.Basis.Xform(offset))}
}

// ScaledGlobal returns t scaled in parent space, origin included.
func (t Transform) ScaledGlobal(scale VectorN) Transform {
	return Transform{Basis: t.Basis.Scaled(scale), Origin: FromScale(scale).Xform(t.Origin)}
}

// ScaledLocal returns t scaled in its own space. The origin is unchanged.
func (t Transform) ScaledLocal(scale VectorN) Transform {
	return Transform{Basis: t.Basis.ScaledLocal(scale), Origin: t.Origin.Duplicate()}
}

// RotatedGlobal returns t rotated in the (from, to) plane of parent space,
// origin included.
func (t Transform) RotatedGlobal(from, to int, angle float64) (Transform, error) {
	rotation, err := FromRotation(from, to, angle)
	if err != nil {
		return t.Duplicate(), err
	}
	return Transform{
		Basis:  rotation.ComposeExpand(t.Basis),
		Origin: rotation.Xform(t.Origin),
	}, nil
}

// RotatedLocal returns t rotated in the (from, to) plane of its own space.
func (t Transform) RotatedLocal(from, to int, angle float64) (Transform, error) {
	rotation, err := FromRotation(from, to, angle)
	if err != nil {
		return t.Duplicate(), err
	}
	return Transform{Basis: t.Basis.ComposeExpand(rotation), Origin: t.Origin.Duplicate()}, nil
}

// InverseBasis returns the inverse of the basis alone.
func (t Transform) InverseBasis() (Basis, error) {
	return t.Basis.Inverse()
}

// Inverse returns the affine inverse of t: the inverse basis, with the
// origin moved to InverseBasis·(-Origin). A singular basis returns the
// identity transform and ErrSingular.
func (t Transform) Inverse() (Transform, error) {
	inverse, err := t.Basis.Inverse()
	if err != nil {
		return IdentityTransform(t.Dimension()), err
	}
	return Transform{Basis: inverse, Origin: inverse.Xform(t.Origin.Negate())}, nil
}

// ComposeSquare returns t ∘ child with both forced to one square size, the
// largest of the column counts and origin lengths. This is the operator for
// parent/child transforms.
func (t Transform) ComposeSquare(child Transform) Transform {
	n := max(t.Basis.ColumnCount(), len(t.Origin), child.Basis.ColumnCount(), len(child.Origin))
	return t.composeAt(child, n)
}

// ComposeExpand returns t ∘ child at the larger of the two full dimensions.
func (t Transform) ComposeExpand(child Transform) Transform {
	return t.composeAt(child, max(t.Dimension(), child.Dimension()))
}

func (t Transform) composeAt(child Transform, n int) Transform {
	parent := t.Basis.WithDimension(n)
	return Transform{
		Basis:  t.Basis.composeAt(child.Basis, n),
		Origin: parent.Xform(child.Origin.WithDimension(n)).Add(t.Origin).WithDimension(n),
	}
}

// ComposeShrink returns the rectangular composition of t and child, with
// no identity filling. See Basis.ComposeShrink.
func (t Transform) ComposeShrink(child Transform) Transform {
	return Transform{
		Basis:  t.Basis.ComposeShrink(child.Basis),
		Origin: t.Basis.ComposeShrink(Basis{child.Origin})[0].Add(t.Origin),
	}
}

// TransformTo returns the transform relative to t that lands on target:
// target ∘ t⁻¹.
func (t Transform) TransformTo(target Transform) (Transform, error) {
	inverse, err := t.Inverse()
	if err != nil {
		return target.Duplicate(), err
	}
	return target.ComposeSquare(inverse), nil
}

// Orthonormalized returns t with an orthonormalized basis.
func (t Transform) Orthonormalized() Transform {
	return Transform{Basis: t.Basis.Orthonormalized(), Origin: t.Origin.Duplicate()}
}

// OrthonormalizedAxisAligned returns t with its basis snapped to signed
// unit axes.
func (t Transform) OrthonormalizedAxisAligned() Transform {
	return Transform{Basis: t.Basis.OrthonormalizedAxisAligned(), Origin: t.Origin.Duplicate()}
}

// Determinant returns the determinant of the basis.
func (t Transform) Determinant() float64 {
	return t.Basis.Determinant()
}

// Lerp interpolates basis and origin linearly. The result is not
// orthonormalized.
func (t Transform) Lerp(to Transform, weight float64) Transform {
	return Transform{Basis: t.Basis.Lerp(to.Basis, weight), Origin: t.Origin.Lerp(to.Origin, weight)}
}

// IsEqualApprox reports whether a and b are approximately equal.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Transform) IsEqualApprox(b Transform) bool {
	return a.Basis.IsEqualApprox(b.Basis) && a.Origin.IsEqualApprox(b.Origin)
}

// IsEqualExact reports whether a and b are exactly equal.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Transform) IsEqualExact(b Transform) bool {
	return a.Basis.IsEqualExact(b.Basis) && a.Origin.IsEqualExact(b.Origin)
}

// String returns the basis columns followed by the origin.
func (t Transform) String() string {
	return t.Basis.String() + " @ " + t.Origin.String()
}
