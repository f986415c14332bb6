package mathnd

import "math"

// Orthonormalized returns b made orthonormal with the Gram-Schmidt process.
// Columns are processed in order; each loses its projection onto every
// earlier result column and is then normalized. A column that depends on
// earlier ones is replaced by the first unit axis that does not, so the
// result is always orthonormal.
func (b Basis) Orthonormalized() Basis {
	columns := b.Columns()
	for i, column := range columns {
		column = reject(column, columns[:i])
		for axis := 0; column.IsZeroApprox() && axis < len(columns); axis++ {
			column = reject(AxisVector(len(columns), axis), columns[:i])
		}
		columns[i] = column.Normalized()
	}
	return columns
}

// reject removes from v its projection onto each of the orthonormal
// vectors in onto.
func reject(v VectorN, onto []VectorN) VectorN {
	for _, u := range onto {
		v = v.Subtract(u.MultiplyScalar(v.Dot(u)))
	}
	return v
}

// OrthonormalizedAxisAligned is like Orthonormalized, but snaps every
// column to the signed unit axis of its largest-magnitude component. The
// result is always a signed permutation of the identity. A column whose
// remainder is zero takes the first axis not used by an earlier column.
func (b Basis) OrthonormalizedAxisAligned() Basis {
	columns := b.Columns()
	n := len(columns)
	used := make([]bool, n)
	for i, column := range columns {
		column = reject(column, columns[:i])
		axis, sign := -1, 1.0
		for j, x := range column {
			if used[j] || IsZeroApprox(x) {
				continue
			}
			if axis < 0 || math.Abs(x) > math.Abs(column[axis]) {
				axis = j
			}
		}
		if axis < 0 {
			for j := range used {
				if !used[j] {
					axis = j
					break
				}
			}
		} else if column[axis] < 0 {
			sign = -1
		}
		used[axis] = true
		columns[i] = AxisVector(n, axis).MultiplyScalar(sign)
	}
	return columns
}

// ScaleAbs returns the length of every column.
func (b Basis) ScaleAbs() VectorN {
	columns := b.Columns()
	scale := make(VectorN, len(columns))
	for i, column := range columns {
		scale[i] = column.Length()
	}
	return scale
}

// UniformScale returns a single scale factor for b. For a square basis it
// is the signed n-th root of the determinant, so a reflection gives a
// negative scale. Otherwise it is the geometric mean of column lengths.
func (b Basis) UniformScale() float64 {
	if b.IsSquare() {
		det := b.Determinant()
		root := math.Pow(math.Abs(det), 1/float64(len(b)))
		if det < 0 {
			return -root
		}
		return root
	}
	scale := b.ScaleAbs()
	if len(scale) == 0 {
		return 1
	}
	product := 1.0
	for _, s := range scale {
		product *= s
	}
	return math.Pow(product, 1/float64(len(scale)))
}

// IsUniformScale reports whether every column has the same length.
func (b Basis) IsUniformScale() bool {
	return b.ScaleAbs().IsUniform()
}

// IsOrthogonal reports whether every pair of columns is perpendicular.
func (b Basis) IsOrthogonal() bool {
	columns := b.Columns()
	for i := range columns {
		for j := i + 1; j < len(columns); j++ {
			if !IsZeroApprox(columns[i].Dot(columns[j])) {
				return false
			}
		}
	}
	return true
}

// IsNormalized reports whether every column has unit length.
func (b Basis) IsNormalized() bool {
	for _, column := range b.Columns() {
		if !column.IsNormalized() {
			return false
		}
	}
	return true
}

// IsOrthonormal reports whether b is orthogonal and normalized.
func (b Basis) IsOrthonormal() bool {
	return b.IsOrthogonal() && b.IsNormalized()
}

// IsRotation reports whether b is orthonormal with determinant 1.
func (b Basis) IsRotation() bool {
	if len(b) == 0 {
		return true
	}
	return b.IsOrthonormal() && IsEqualApprox(b.Determinant(), 1)
}

// IsConformal reports whether b is orthogonal with uniform scale, meaning
// it preserves angles and length ratios.
func (b Basis) IsConformal() bool {
	return b.IsOrthogonal() && b.IsUniformScale()
}

// IsDiagonal reports whether every off-diagonal entry is zero.
func (b Basis) IsDiagonal() bool {
	n := b.Dimension()
	for column := range n {
		for row := range n {
			if row != column && !IsZeroApprox(b.At(column, row)) {
				return false
			}
		}
	}
	return true
}
