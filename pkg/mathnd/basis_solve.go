package mathnd

import "math"

// rows returns the n×n fill of b as a row-major matrix.
func (b Basis) rows(n int) [][]float64 {
	m := make([][]float64, n)
	for row := range n {
		m[row] = make([]float64, n)
		for column := range n {
			m[row][column] = b.At(column, row)
		}
	}
	return m
}

// pivotRow returns the row at or below k with the largest magnitude in
// column k.
func pivotRow(m [][]float64, k int) int {
	pivot := k
	for row := k + 1; row < len(m); row++ {
		if math.Abs(m[row][k]) > math.Abs(m[pivot][k]) {
			pivot = row
		}
	}
	return pivot
}

// Determinant returns the determinant of b using Gaussian elimination with
// partial pivoting. It returns 0 for an empty, non-square or singular
// basis.
func (b Basis) Determinant() float64 {
	if !b.IsSquare() {
		return 0
	}
	n := len(b)
	m := b.rows(n)
	det := 1.0
	for k := range n {
		pivot := pivotRow(m, k)
		if IsZeroApprox(m[pivot][k]) {
			return 0
		}
		if pivot != k {
			m[pivot], m[k] = m[k], m[pivot]
			det = -det
		}
		det *= m[k][k]
		for row := k + 1; row < n; row++ {
			factor := m[row][k] / m[k][k]
			if factor == 0 {
				continue
			}
			for column := k; column < n; column++ {
				m[row][column] -= factor * m[k][column]
			}
		}
	}
	return det
}

// Inverse returns the inverse of b. A basis that is not square is first
// filled to its full dimension with identity columns; this is not a
// pseudo-inverse.
//
// The inverse is computed from an LUP decomposition (Doolittle, partial
// pivoting) followed by forward and back substitution for each column.
// A singular basis returns the identity of the same size and ErrSingular.
func (b Basis) Inverse() (Basis, error) {
	n := b.Dimension()
	lu, perm, ok := decomposeLUP(b.rows(n))
	if !ok {
		return IdentityBasis(n), opError(opInverse, ErrSingular)
	}

	result := make(Basis, n)
	y := make([]float64, n)
	for column := range n {
		// Forward substitution: L*y = P*e_column.
		for i := range n {
			sum := 0.0
			if perm[i] == column {
				sum = 1
			}
			for k := range i {
				sum -= lu[i][k] * y[k]
			}
			y[i] = sum
		}
		// Back substitution: U*x = y.
		x := make(VectorN, n)
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < n; k++ {
				sum -= lu[i][k] * x[k]
			}
			x[i] = sum / lu[i][i]
		}
		result[column] = x
	}
	return result, nil
}

// decomposeLUP factors m in place into unit lower L (below the diagonal)
// and upper U (on and above it), returning the row permutation. ok is
// false if a pivot is approximately zero.
func decomposeLUP(m [][]float64) (lu [][]float64, perm []int, ok bool) {
	n := len(m)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for k := range n {
		pivot := pivotRow(m, k)
		if IsZeroApprox(m[pivot][k]) {
			return nil, nil, false
		}
		if pivot != k {
			m[pivot], m[k] = m[k], m[pivot]
			perm[pivot], perm[k] = perm[k], perm[pivot]
		}
		for row := k + 1; row < n; row++ {
			m[row][k] /= m[k][k]
			for column := k + 1; column < n; column++ {
				m[row][column] -= m[row][k] * m[k][column]
			}
		}
	}
	return m, perm, true
}
