// Package mathnd provides N-dimensional vectors, bases, transforms and
// geometry primitives for the tesseract engine.
//
// Every value type here is a plain slice or struct. Methods return new values
// and never write through to the receiver unless the method has a pointer
// receiver and says so.
package mathnd

import (
	"log/slog"
	"math"
)

// Epsilon is the tolerance used by all approximate comparisons.
const Epsilon = 0.00001

// IsZeroApprox reports whether x is within Epsilon of zero.
func IsZeroApprox(x float64) bool {
	return math.Abs(x) < Epsilon
}

// IsEqualApprox reports whether a and b are equal within a tolerance that
// scales with the magnitude of a, but never drops below Epsilon.
func IsEqualApprox(a, b float64) bool {
	// Check for exact equality first, required to handle infinities.
	if a == b {
		return true
	}
	tolerance := Epsilon * math.Abs(a)
	if tolerance < Epsilon {
		tolerance = Epsilon
	}
	return math.Abs(a-b) < tolerance
}

// Snapped rounds value to the nearest multiple of step.
// A zero step returns value unchanged.
func Snapped(value, step float64) float64 {
	if step == 0 {
		return value
	}
	return math.Floor(value/step+0.5) * step
}

// Posmod returns the modulus of x and y that is always non-negative for a
// positive y.
func Posmod(x, y float64) float64 {
	value := math.Mod(x, y)
	if (value < 0 && y > 0) || (value > 0 && y < 0) {
		value += y
	}
	return value
}

// guard logs a precondition violation and reports whether it happened.
// Callers return a safe default when it does.
func guard(violated bool, op, msg string, args ...any) bool {
	if violated {
		slog.Warn(op+": "+msg, args...)
	}
	return violated
}
