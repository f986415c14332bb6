package mathnd

import (
	"fmt"
	"math"
	"strings"
)

// EulerRotation is a rotation confined to the plane of two axes, turning
// axis From towards axis To by Angle radians.
type EulerRotation struct {
	From  int
	To    int
	Angle float64
}

// Valid reports whether the rotation names two distinct, non-negative axes.
func (r EulerRotation) Valid() bool {
	return r.From >= 0 && r.To >= 0 && r.From != r.To
}

// Basis returns the rotation as a basis.
func (r EulerRotation) Basis() (Basis, error) {
	return FromRotation(r.From, r.To, r.Angle)
}

// String returns the rotation formatted as "from->to: angle".
func (r EulerRotation) String() string {
	return fmt.Sprintf("%d->%d: %g", r.From, r.To, r.Angle)
}

// Euler is an ordered sequence of simple plane rotations.
//
// Order matters: the rotations are composed one after another. Rotations
// that share no axis commute, others in general do not.
type Euler []EulerRotation

// Dimension returns one more than the highest axis referenced, or 0 for an
// empty sequence.
func (e Euler) Dimension() int {
	n := 0
	for _, r := range e {
		n = max(n, r.From+1, r.To+1)
	}
	return n
}

// ToRotationBasis composes the identity with each rotation in order using
// ComposeSquare. Invalid rotations are logged and skipped.
func (e Euler) ToRotationBasis() Basis {
	basis := IdentityBasis(e.Dimension())
	for _, r := range e {
		rotation, err := r.Basis()
		if err != nil {
			guard(true, "ToRotationBasis", err.Error(), "from", r.From, "to", r.To)
			continue
		}
		basis = basis.ComposeSquare(rotation)
	}
	return basis
}

// Snapped returns e with every angle rounded to the nearest multiple of
// step.
func (e Euler) Snapped(step float64) Euler {
	result := make(Euler, len(e))
	for i, r := range e {
		result[i] = EulerRotation{From: r.From, To: r.To, Angle: Snapped(r.Angle, step)}
	}
	return result
}

// Rotated returns e with one more rotation appended.
func (e Euler) Rotated(from, to int, angle float64) Euler {
	result := append(make(Euler, 0, len(e)+1), e...)
	return append(result, EulerRotation{From: from, To: to, Angle: angle})
}

// IsEqualApprox reports whether a and b list the same planes with
// approximately equal angles.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Euler) IsEqualApprox(b Euler) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].From != b[i].From || a[i].To != b[i].To || !IsEqualApprox(a[i].Angle, b[i].Angle) {
			return false
		}
	}
	return true
}

// String returns the rotations in order.
func (e Euler) String() string {
	parts := make([]string, len(e))
	for i, r := range e {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// EulerFromBasis decomposes b into simple rotations. See
// DecomposeSimpleRotations.
func EulerFromBasis(b Basis) Euler {
	return DecomposeSimpleRotations(b.Columns())
}

// DecomposeSimpleRotations extracts the simple plane rotations present in
// a rotation matrix given by its columns.
//
// This is a best-effort, lossy decomposition. For each column c it scans
// the entries below the diagonal. A rotation is emitted for the pair
// (c, r) only when m[c][r] is the single non-zero entry off the diagonal
// of column c, and columns and rows c and r are otherwise untouched. A
// general rotation that mixes more than two axes is skipped, not
// approximated.
//
// The plane orientation follows the parity of c+r: odd pairs rotate c
// towards r, even pairs rotate r towards c. In three dimensions this gives
// the XY, YZ and ZX planes.
func DecomposeSimpleRotations(columns []VectorN) Euler {
	basis := Basis(columns)
	n := basis.Dimension()
	var euler Euler
	for c := range n {
		r := -1
		for row := c + 1; row < n; row++ {
			if IsZeroApprox(basis.At(c, row)) {
				continue
			}
			if r >= 0 {
				r = -1
				break
			}
			r = row
		}
		if r < 0 || !isSimplePair(basis, n, c, r) {
			continue
		}
		angle := math.Atan2(basis.At(c, r), basis.At(c, c))
		if IsZeroApprox(angle) {
			continue
		}
		if (c+r)%2 == 0 {
			euler = append(euler, EulerRotation{From: r, To: c, Angle: -angle})
		} else {
			euler = append(euler, EulerRotation{From: c, To: r, Angle: angle})
		}
	}
	return euler
}

// isSimplePair reports whether columns c and r and rows c and r of basis
// have no non-zero entries outside the 2×2 block at (c, r).
func isSimplePair(basis Basis, n, c, r int) bool {
	for i := range n {
		if i == c || i == r {
			continue
		}
		if !IsZeroApprox(basis.At(c, i)) || !IsZeroApprox(basis.At(r, i)) ||
			!IsZeroApprox(basis.At(i, c)) || !IsZeroApprox(basis.At(i, r)) {
			return false
		}
	}
	return true
}
