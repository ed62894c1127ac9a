// SPDX-License-Identifier: MIT

package gate

import (
	"math"

	"github.com/katalvlaran/cellgate/lattice"
)

// Measure computes the scalar invariant compared by TierTolerance and
// TierInvariance. Implementations must be pure and safe for concurrent use.
type Measure func(p lattice.Point) float64

// DefaultWeights are the weights of the Euclidean measure Σ pᵢ².
var DefaultWeights = [4]float64{1, 1, 1, 1}

// Diagonal returns the quadratic form Σ w[i]·p[i]².
// With DefaultWeights it is the squared norm, which is 1 for every point.
func Diagonal(w [4]float64) Measure {
	return func(p lattice.Point) float64 {
		c := p.Coords()

		return w[0]*c[0]*c[0] + w[1]*c[1]*c[1] + w[2]*c[2]*c[2] + w[3]*c[3]*c[3]
	}
}

// ValidWeights reports whether w can define a Diagonal measure: every weight
// finite and non-negative, at least one positive.
func ValidWeights(w [4]float64) bool {
	var sum float64
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
		sum += v
	}

	return sum > 0
}
