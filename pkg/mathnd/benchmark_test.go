package mathnd

import (
	"testing"
)

func benchTransform() Transform {
	return FromPositionRotationScale(
		Vec(1, 2, 3, 4),
		Euler{{From: 0, To: 1, Angle: 0.3}, {From: 2, To: 3, Angle: 0.5}, {From: 1, To: 3, Angle: 0.2}},
		Vec(1, 2, 3, 4),
	)
}

func BenchmarkBasisComposeSquare(b *testing.B) {
	m1 := benchTransform().Basis
	m2 := FromScale(Vec(2, 2, 2, 2))

	for b.Loop() {
		_ = m1.ComposeSquare(m2)
	}
}

func BenchmarkBasisDeterminant(b *testing.B) {
	m := benchTransform().Basis

	for b.Loop() {
		_ = m.Determinant()
	}
}

func BenchmarkBasisInverse(b *testing.B) {
	m := benchTransform().Basis

	for b.Loop() {
		_, _ = m.Inverse()
	}
}

func BenchmarkBasisOrthonormalized(b *testing.B) {
	m := benchTransform().Basis

	for b.Loop() {
		_ = m.Orthonormalized()
	}
}

func BenchmarkTransformXform(b *testing.B) {
	tr := benchTransform()
	v := Vec(1, 2, 3, 4)

	for b.Loop() {
		_ = tr.Xform(v)
	}
}

func BenchmarkTransformInverse(b *testing.B) {
	tr := benchTransform()

	for b.Loop() {
		_, _ = tr.Inverse()
	}
}

func BenchmarkDecomposeSimpleRotations(b *testing.B) {
	columns := Euler{{From: 0, To: 1, Angle: 0.3}, {From: 2, To: 3, Angle: 0.5}}.ToRotationBasis().Columns()

	for b.Loop() {
		_ = DecomposeSimpleRotations(columns)
	}
}
