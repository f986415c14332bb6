package mathnd

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTransformApprox(t *testing.T, want, got Transform) {
	t.Helper()
	assert.Truef(t, want.IsEqualApprox(got), "got %s, want %s", got, want)
}

func sampleTransform() Transform {
	return FromPositionRotationScale(
		Vec(1, 2, 3),
		Euler{{From: 0, To: 1, Angle: 0.3}, {From: 1, To: 2, Angle: 0.7}},
		Vec(2, 3, 4),
	)
}

func TestTransformBasisColumnIdentityFill(t *testing.T) {
	tr := Transform{Basis: Basis{{1, 0, 0, 0}, {}, {}, {}}}
	assert.Equal(t, VectorN{0, 0, 0, 1}, tr.Basis.Column(3))
	assert.Equal(t, 4, tr.Dimension())
}

func TestTransformDimension(t *testing.T) {
	assert.Equal(t, 5, Transform{Basis: IdentityBasis(2), Origin: Zero(5)}.Dimension())
	assert.Equal(t, 3, IdentityTransform(3).Dimension())

	tr := FromPosition(Vec(1, 2))
	tr.SetDimension(3)
	assert.Equal(t, VectorN{1, 2, 0}, tr.Origin)
	assert.Equal(t, IdentityBasis(3), tr.Basis)
}

func TestTransformXform(t *testing.T) {
	tr := FromPositionScale(Vec(1, 2), Vec(2, 3))
	assert.Equal(t, VectorN{3, 5}, tr.Xform(Vec(1, 1)))
	assert.Equal(t, VectorN{2, 3}, tr.XformBasis(Vec(1, 1)))
}

func TestTransformTranslate(t *testing.T) {
	rotation, err := FromRotation(0, 1, math.Pi/2)
	require.NoError(t, err)
	tr := Transform{Basis: rotation, Origin: Zero(2)}

	assertVecApprox(t, Vec(1, 0), tr.TranslatedGlobal(Vec(1, 0)).Origin)
	assertVecApprox(t, Vec(0, 1), tr.TranslatedLocal(Vec(1, 0)).Origin)
}

func TestTransformScale(t *testing.T) {
	tr := FromPosition(Vec(1, 1))
	global := tr.ScaledGlobal(Vec(2, 3))
	assert.Equal(t, VectorN{2, 3}, global.Origin)
	assert.Equal(t, Basis{{2, 0}, {0, 3}}, global.Basis)

	local := tr.ScaledLocal(Vec(2, 3))
	assert.Equal(t, VectorN{1, 1}, local.Origin)
	assert.Equal(t, Basis{{2, 0}, {0, 3}}, local.Basis)
}

func TestTransformRotate(t *testing.T) {
	tr := FromPosition(Vec(1, 0))
	global, err := tr.RotatedGlobal(0, 1, math.Pi/2)
	require.NoError(t, err)
	assertVecApprox(t, Vec(0, 1), global.Origin)

	local, err := tr.RotatedLocal(0, 1, math.Pi/2)
	require.NoError(t, err)
	assertVecApprox(t, Vec(1, 0), local.Origin)
	assertVecApprox(t, Vec(1, 1), local.Xform(Vec(1, 0)))

	_, err = tr.RotatedGlobal(0, 0, 1)
	require.ErrorIs(t, err, ErrInvalidRotationAxes)
}

func TestTransformInverseLaws(t *testing.T) {
	tr := sampleTransform()
	inverse, err := tr.Inverse()
	require.NoError(t, err)

	assertTransformApprox(t, IdentityTransform(3), tr.ComposeSquare(inverse))
	assertTransformApprox(t, IdentityTransform(3), inverse.ComposeSquare(tr))

	point := Vec(4, -5, 6)
	back, err := tr.XformInverse(tr.Xform(point))
	require.NoError(t, err)
	assertVecApprox(t, point, back)
}

func TestTransformInverseSingular(t *testing.T) {
	tr := Transform{Basis: Basis{{0, 0}, {0, 0}}, Origin: Vec(1, 2)}
	inverse, err := tr.Inverse()
	require.ErrorIs(t, err, ErrSingular)
	assert.Equal(t, IdentityTransform(2), inverse)

	_, err = tr.XformInverse(Vec(1, 1))
	require.ErrorIs(t, err, ErrSingular)
}

func TestTransformTo(t *testing.T) {
	from := sampleTransform()
	to := FromPositionScale(Vec(-1, 0, 2), Vec(1, 1, 5))
	relative, err := from.TransformTo(to)
	require.NoError(t, err)
	assertTransformApprox(t, to, relative.ComposeSquare(from))
}

func TestTransformComposeMixedDimensions(t *testing.T) {
	parent := FromPosition(Vec(1, 2, 3))
	child := FromPositionScale(Vec(1, 1), Vec(2, 2))

	got := parent.ComposeSquare(child)
	assert.Equal(t, Basis{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}}, got.Basis)
	assert.Equal(t, VectorN{2, 3, 3}, got.Origin)

	got = parent.ComposeExpand(child)
	assert.Equal(t, VectorN{2, 3, 3}, got.Origin)
}

func TestTransformComposeShrink(t *testing.T) {
	parent := Transform{Basis: Basis{{1, 2}, {3, 4}, {5, 6}}, Origin: Vec(1, 1)}
	child := Transform{
		Basis:  Basis{{7, 8, 9}, {10, 11, 12}, {13, 14, 15}, {16, 17, 18}},
		Origin: Vec(1, 0, 1),
	}
	got := parent.ComposeShrink(child)
	assert.Equal(t, Basis{{76, 100}, {103, 136}, {130, 172}, {157, 208}}, got.Basis)
	assert.Equal(t, VectorN{7, 9}, got.Origin)
}

func TestTransformComposeIdentity(t *testing.T) {
	tr := sampleTransform()
	assertTransformApprox(t, tr, IdentityTransform(3).ComposeSquare(tr))
	assertTransformApprox(t, tr, tr.ComposeSquare(IdentityTransform(3)))
}

func TestTransformOrthonormalized(t *testing.T) {
	tr := sampleTransform().Orthonormalized()
	assert.True(t, tr.Basis.IsOrthonormal())
	assert.Equal(t, VectorN{1, 2, 3}, tr.Origin)
	assert.InDelta(t, 1.0, tr.Determinant(), 1e-9)

	aligned := sampleTransform().OrthonormalizedAxisAligned()
	assert.True(t, aligned.Basis.IsOrthonormal())
}

func TestTransformLerp(t *testing.T) {
	a := FromPosition(Vec(0, 0))
	b := FromPositionScale(Vec(2, 4), Vec(3, 3))
	got := a.Lerp(b, 0.5)
	assert.Equal(t, VectorN{1, 2}, got.Origin)
	assert.Equal(t, Basis{{2, 0}, {0, 2}}, got.Basis)
}

func TestTransformDuplicateIsDeep(t *testing.T) {
	tr := FromPosition(Vec(1, 2))
	dup := tr.Duplicate()
	dup.Origin[0] = 9
	dup.Basis[0][0] = 9
	assert.Equal(t, 1.0, tr.Origin[0])
	assert.Equal(t, 1.0, tr.Basis[0][0])
}

func TestTransformMat4(t *testing.T) {
	assert.Equal(t, mgl64.Translate3D(1, 2, 3), FromPosition(Vec(1, 2, 3)).ToMat4())

	rotation, err := FromRotation(0, 1, 0.4)
	require.NoError(t, err)
	m := Transform{Basis: rotation}.ToMat4()
	assert.True(t, m.ApproxEqual(mgl64.HomogRotate3DZ(0.4)))

	tr := sampleTransform()
	assertTransformApprox(t, tr, TransformFromMat4(tr.ToMat4()))
}

func TestTransformMat3(t *testing.T) {
	assert.Equal(t, mgl64.Translate2D(1, 2), FromPosition(Vec(1, 2)).ToMat3())

	tr := FromPositionRotationScale(Vec(3, -1), Euler{{From: 0, To: 1, Angle: 1}}, Vec(2, 1))
	assertTransformApprox(t, tr, TransformFromMat3(tr.ToMat3()))
}

func TestTransformBasis4D(t *testing.T) {
	tr := FromPositionRotationScale(
		Vec(1, 2, 3, 4),
		Euler{{From: 0, To: 3, Angle: 0.5}, {From: 1, To: 2, Angle: 0.25}},
		Vec(1, 2, 1, 2),
	)
	m, origin := tr.ToBasis4D()
	assertTransformApprox(t, tr, TransformFromBasis4D(m, origin))

	// Truncating a 5D transform keeps the 4D block.
	m, _ = IdentityTransform(5).ToBasis4D()
	assert.Equal(t, mgl64.Ident4(), m)
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "[(1, 0), (0, 1)] @ (1, 2)", FromPosition(Vec(1, 2)).String())
}
