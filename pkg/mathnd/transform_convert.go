package mathnd

import "github.com/go-gl/mathgl/mgl64"

// Conversions between Transform and the fixed-size engine-native matrices.
// Going down truncates, going up zero-extends the origin and identity-fills
// the basis.

// ToMat3 returns the 2D part of t as a homogeneous 3×3 matrix.
func (t Transform) ToMat3() mgl64.Mat3 {
	m := mgl64.Ident3()
	for column := range 2 {
		for row := range 2 {
			m.Set(row, column, t.Basis.At(column, row))
		}
		m.Set(column, 2, t.Origin.ValueOnAxis(column))
	}
	return m
}

// TransformFromMat3 extracts a 2D transform from a homogeneous 3×3 matrix.
func TransformFromMat3(m mgl64.Mat3) Transform {
	return Transform{
		Basis:  Basis{{m.At(0, 0), m.At(1, 0)}, {m.At(0, 1), m.At(1, 1)}},
		Origin: VectorN{m.At(0, 2), m.At(1, 2)},
	}
}

// ToMat4 returns the 3D part of t as a homogeneous 4×4 matrix.
func (t Transform) ToMat4() mgl64.Mat4 {
	m := mgl64.Ident4()
	for column := range 3 {
		for row := range 3 {
			m.Set(row, column, t.Basis.At(column, row))
		}
		m.Set(column, 3, t.Origin.ValueOnAxis(column))
	}
	return m
}

// TransformFromMat4 extracts a 3D transform from a homogeneous 4×4 matrix.
func TransformFromMat4(m mgl64.Mat4) Transform {
	basis := make(Basis, 3)
	for column := range 3 {
		basis[column] = VectorN{m.At(0, column), m.At(1, column), m.At(2, column)}
	}
	return Transform{Basis: basis, Origin: VectorN{m.At(0, 3), m.At(1, 3), m.At(2, 3)}}
}

// ToBasis4D returns the 4D part of t as a linear 4×4 matrix and an origin.
func (t Transform) ToBasis4D() (mgl64.Mat4, mgl64.Vec4) {
	var m mgl64.Mat4
	for column := range 4 {
		for row := range 4 {
			m.Set(row, column, t.Basis.At(column, row))
		}
	}
	return m, t.Origin.ToVec4()
}

// TransformFromBasis4D builds a 4D transform from a linear 4×4 matrix and
// an origin.
func TransformFromBasis4D(m mgl64.Mat4, origin mgl64.Vec4) Transform {
	basis := make(Basis, 4)
	for column := range 4 {
		basis[column] = FromVec4(m.Col(column))
	}
	return Transform{Basis: basis, Origin: FromVec4(origin)}
}
