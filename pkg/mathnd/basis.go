package mathnd

import (
	"math"
	"strings"
)

// Basis is the linear part of an N-dimensional transform, stored as a list
// of columns. Column i is the image of the unit vector along input axis i.
//
// Columns may have different lengths, and the basis may have more or fewer
// columns than rows. Any entry that is not stored reads as the identity
// matrix's value at that position: 1 on the diagonal, 0 elsewhere. This lets
// a low-dimensional basis act as identity on axes it never mentions, so it
// composes with a higher-dimensional one without explicit padding.
//
// The empty basis is therefore the identity of every dimension.
type Basis []VectorN

// IdentityBasis returns the n×n identity basis.
func IdentityBasis(n int) Basis {
	if guard(n < 0, "IdentityBasis", "negative dimension", "dimension", n) {
		return Basis{}
	}
	b := make(Basis, n)
	for i := range b {
		b[i] = AxisVector(n, i)
	}
	return b
}

// FromScale returns a diagonal basis with scale on the diagonal.
func FromScale(scale VectorN) Basis {
	b := make(Basis, len(scale))
	for i, s := range scale {
		b[i] = make(VectorN, len(scale))
		b[i][i] = s
	}
	return b
}

// FromRotation returns a basis that rotates by angle radians in the plane
// of the from and to axes, turning the from axis towards the to axis.
// The result is the identity with a 2×2 block [[cos, -sin], [sin, cos]]
// placed at the (from, to) coordinate pair.
func FromRotation(from, to int, angle float64) (Basis, error) {
	if from < 0 || to < 0 || from == to {
		return Basis{}, opError(opFromRotation, ErrInvalidRotationAxes)
	}
	b := IdentityBasis(max(from, to) + 1)
	sin, cos := math.Sincos(angle)
	b[from][from] = cos
	b[from][to] = sin
	b[to][from] = -sin
	b[to][to] = cos
	return b, nil
}

// FromSwap returns a basis that swaps axes a and b.
func FromSwap(a, b int) Basis {
	if guard(a < 0 || b < 0, "FromSwap", "negative axis", "a", a, "b", b) {
		return Basis{}
	}
	basis := IdentityBasis(max(a, b) + 1)
	basis[a], basis[b] = basis[b], basis[a]
	return basis
}

// Duplicate returns a deep copy of b.
func (b Basis) Duplicate() Basis {
	result := make(Basis, len(b))
	for i, column := range b {
		result[i] = column.Duplicate()
	}
	return result
}

// ColumnCount returns the number of stored columns (input dimensions).
func (b Basis) ColumnCount() int {
	return len(b)
}

// RowCount returns the length of the longest stored column (output
// dimensions).
func (b Basis) RowCount() int {
	rows := 0
	for _, column := range b {
		rows = max(rows, len(column))
	}
	return rows
}

// Dimension returns the size of the square matrix b fills to without
// losing any stored entry.
func (b Basis) Dimension() int {
	return max(b.ColumnCount(), b.RowCount())
}

// IsSquare reports whether b is a non-empty basis whose columns all fit in
// the column count, so filling it to ColumnCount×ColumnCount loses nothing.
func (b Basis) IsSquare() bool {
	return len(b) > 0 && b.RowCount() <= len(b)
}

// identityValue reads row of a column stored at index columnIndex.
func identityValue(column VectorN, columnIndex, row int) float64 {
	if row < len(column) {
		return column[row]
	}
	if row == columnIndex {
		return 1
	}
	return 0
}

// At returns the entry at (column, row), filling unstored entries with the
// identity.
func (b Basis) At(column, row int) float64 {
	if column < 0 || row < 0 {
		return 0
	}
	if column >= len(b) {
		if row == column {
			return 1
		}
		return 0
	}
	return identityValue(b[column], column, row)
}

// Column returns column i grown to the basis dimension, with missing
// entries taken from the identity.
func (b Basis) Column(i int) VectorN {
	n := max(b.Dimension(), i+1)
	column := make(VectorN, n)
	for row := range n {
		column[row] = b.At(i, row)
	}
	return column
}

// Row returns row i grown to the basis dimension, with missing entries
// taken from the identity.
func (b Basis) Row(i int) VectorN {
	n := max(b.Dimension(), i+1)
	row := make(VectorN, n)
	for column := range n {
		row[column] = b.At(column, i)
	}
	return row
}

// Columns returns every column of the square fill of b.
func (b Basis) Columns() []VectorN {
	n := b.Dimension()
	columns := make([]VectorN, n)
	for i := range n {
		columns[i] = b.Column(i)
	}
	return columns
}

// WithColumn returns a copy of b with column i replaced. Missing columns
// before i are added as identity columns.
func (b Basis) WithColumn(i int, column VectorN) Basis {
	if guard(i < 0, "WithColumn", "negative column index", "index", i) {
		return b.Duplicate()
	}
	result := b.Duplicate()
	for len(result) <= i {
		result = append(result, VectorN{})
	}
	result[i] = column.Duplicate()
	return result
}

// SetColumn replaces column i in place.
func (b *Basis) SetColumn(i int, column VectorN) {
	*b = b.WithColumn(i, column)
}

// Transposed returns the transpose of the square fill of b.
func (b Basis) Transposed() Basis {
	n := b.Dimension()
	result := make(Basis, n)
	for i := range n {
		result[i] = b.Row(i)
	}
	return result
}

// Xform transforms the vector v by b. Entries past the end of v are zero;
// rows past the end of b pass v through unchanged.
func (b Basis) Xform(v VectorN) VectorN {
	result := make(VectorN, max(b.RowCount(), len(v)))
	for k, x := range v {
		if x == 0 {
			continue
		}
		for row := range result {
			result[row] += x * b.At(k, row)
		}
	}
	return result
}

// XformAxis transforms a basis column stored for axisIndex by b.
//
// Unlike Xform, the axis is identity-filled: if it is shorter than
// axisIndex+1, its implicit 1 at axisIndex contributes b's own column at
// axisIndex. This keeps axes untouched by a low-dimensional child acting as
// identity after composition.
func (b Basis) XformAxis(axis VectorN, axisIndex int) VectorN {
	result := make(VectorN, max(b.RowCount(), len(axis)))
	inputs := max(len(b), len(axis), axisIndex+1)
	for k := range inputs {
		x := identityValue(axis, axisIndex, k)
		if x == 0 {
			continue
		}
		for row := range result {
			result[row] += x * b.At(k, row)
		}
	}
	return result
}

// XformTransposed transforms v by the transpose of b. For an orthonormal
// basis this is the inverse transformation.
func (b Basis) XformTransposed(v VectorN) VectorN {
	result := make(VectorN, max(len(b), len(v)))
	rows := max(b.Dimension(), len(v))
	for i := range result {
		var sum float64
		for row := range rows {
			sum += b.At(i, row) * v.ValueOnAxis(row)
		}
		result[i] = sum
	}
	return result
}

// WithDimension returns b filled or truncated to a square n×n basis.
// Growing adds identity columns and identity-fills short columns;
// shrinking drops columns and rows.
func (b Basis) WithDimension(n int) Basis {
	if guard(n < 0, opDimension, "negative dimension", "dimension", n) {
		return b.Duplicate()
	}
	result := make(Basis, n)
	for column := range n {
		result[column] = make(VectorN, n)
		for row := range n {
			result[column][row] = b.At(column, row)
		}
	}
	return result
}

// SetDimension resizes b in place to a square n×n basis.
func (b *Basis) SetDimension(n int) {
	*b = b.WithDimension(n)
}

// ComposeSquare returns b ∘ child with both operands forced to the same
// square size, the larger of their column counts. This is the composition
// for hierarchical transforms that share one coordinate convention.
// Rows of a basis beyond that size are dropped.
func (b Basis) ComposeSquare(child Basis) Basis {
	return b.composeAt(child, max(b.ColumnCount(), child.ColumnCount()))
}

// ComposeExpand returns b ∘ child at the larger of the two full dimensions,
// so rows beyond the column count survive composition.
func (b Basis) ComposeExpand(child Basis) Basis {
	return b.composeAt(child, max(b.Dimension(), child.Dimension()))
}

func (b Basis) composeAt(child Basis, n int) Basis {
	parent := b.WithDimension(n)
	result := make(Basis, n)
	for j := range n {
		var column VectorN
		if j < len(child) {
			column = child[j]
		}
		result[j] = parent.XformAxis(column, j).WithDimension(n)
	}
	return result
}

// ComposeShrink returns the rectangular matrix product b × child, without
// identity filling: an M×N parent times an N×O child is M×O. Entries not
// stored in either operand count as zero. A child with no columns behaves
// as an infinite identity and returns b unchanged.
func (b Basis) ComposeShrink(child Basis) Basis {
	if len(child) == 0 {
		return b.Duplicate()
	}
	rows := b.RowCount()
	result := make(Basis, len(child))
	for j, childColumn := range child {
		column := make(VectorN, rows)
		for k := range min(len(childColumn), len(b)) {
			x := childColumn[k]
			for row, value := range b[k] {
				column[row] += x * value
			}
		}
		result[j] = column
	}
	return result
}

// Scaled returns b scaled globally: row i is multiplied by scale[i].
func (b Basis) Scaled(scale VectorN) Basis {
	return FromScale(scale).ComposeExpand(b)
}

// ScaledLocal returns b scaled in its own space: column i is multiplied by
// scale[i].
func (b Basis) ScaledLocal(scale VectorN) Basis {
	return b.ComposeExpand(FromScale(scale))
}

// ScaledUniform returns the square fill of b multiplied by s.
func (b Basis) ScaledUniform(s float64) Basis {
	result := b.WithDimension(b.Dimension())
	for i := range result {
		result[i] = result[i].MultiplyScalar(s)
	}
	return result
}

// Rotated returns b rotated globally in the (from, to) plane.
func (b Basis) Rotated(from, to int, angle float64) (Basis, error) {
	rotation, err := FromRotation(from, to, angle)
	if err != nil {
		return b.Duplicate(), err
	}
	return rotation.ComposeExpand(b), nil
}

// Lerp linearly interpolates each entry of the square fills of b and to.
func (b Basis) Lerp(to Basis, weight float64) Basis {
	n := max(b.Dimension(), to.Dimension())
	result := make(Basis, n)
	for column := range n {
		result[column] = make(VectorN, n)
		for row := range n {
			from := b.At(column, row)
			result[column][row] = from + (to.At(column, row)-from)*weight
		}
	}
	return result
}

// IsEqualApprox compares the square fills of a and b.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Basis) IsEqualApprox(b Basis) bool {
	n := max(a.Dimension(), b.Dimension())
	for column := range n {
		for row := range n {
			if !IsEqualApprox(a.At(column, row), b.At(column, row)) {
				return false
			}
		}
	}
	return true
}

// IsEqualExact compares the square fills of a and b exactly.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Basis) IsEqualExact(b Basis) bool {
	n := max(a.Dimension(), b.Dimension())
	for column := range n {
		for row := range n {
			if a.At(column, row) != b.At(column, row) {
				return false
			}
		}
	}
	return true
}

// String returns the stored columns of b.
func (b Basis) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, column := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(column.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
