package mathnd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by kernel operations that have no meaningful
// fallback value.
var (
	ErrSingular            = errors.New("matrix is singular")
	ErrInvalidRotationAxes = errors.New("rotation axes must be distinct and non-negative")
	ErrDegenerate          = errors.New("input is degenerate")
	ErrDimension           = errors.New("invalid dimension")
)

// Operation tags used when wrapping sentinel errors.
const (
	opInverse      = "Inverse"
	opFromRotation = "FromRotation"
	opPlaneFrom    = "PlaneFromPoints"
	opDimension    = "SetDimension"
)

// opError wraps err with an operation tag so errors.Is still matches the
// sentinel. err must not be nil.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
