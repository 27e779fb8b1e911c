// Package vecmath provides the 2D vector helpers used by every steering computation.
//
// Vectors are gonum r2.Vec values. Every operation that divides by a magnitude
// short-circuits on a (near) zero vector so NaN never enters agent state.
package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the magnitude below which a vector is treated as zero.
const Epsilon = 1e-12

// Zero is the zero vector.
var Zero = r2.Vec{}

// Magnitude returns sqrt(x²+y²).
func Magnitude(v r2.Vec) float64 {
	return r2.Norm(v)
}

// IsZero reports whether v has (near) zero magnitude.
func IsZero(v r2.Vec) bool {
	return Magnitude(v) <= Epsilon
}

// SetMagnitude returns v scaled so its magnitude equals length.
// The zero vector is returned unchanged.
func SetMagnitude(v r2.Vec, length float64) r2.Vec {
	m := Magnitude(v)
	if m <= Epsilon {
		return v
	}
	return r2.Scale(length/m, v)
}

// Limit scales v down to maxLen if its magnitude exceeds maxLen.
// Vectors already within the bound are returned unchanged.
func Limit(v r2.Vec, maxLen float64) r2.Vec {
	m := Magnitude(v)
	if m <= maxLen || m <= Epsilon {
		return v
	}
	return r2.Scale(maxLen/m, v)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Heading returns the angle of v in radians.
func Heading(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// Finite reports whether both components are neither NaN nor Inf.
func Finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
