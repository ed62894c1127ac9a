// SPDX-License-Identifier: MIT

package rotor

import (
	"math"

	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/matrix"
)

// Pairs lists the coordinate index pairs (i<j) of the 6 bivector components,
// in component order: (1,2),(1,3),(1,4),(2,3),(2,4),(3,4) with 0-based indices.
var Pairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// Bivector is an oriented plane in R⁴, one component per entry of Pairs.
type Bivector [6]float64

// Wedge returns the exterior product a∧b: component_ij = a[i]·b[j] − a[j]·b[i].
func Wedge(a, b [4]float64) Bivector {
	var out Bivector
	for k, p := range Pairs {
		i, j := p[0], p[1]
		out[k] = a[i]*b[j] - a[j]*b[i]
	}

	return out
}

// Magnitude returns the Euclidean norm of the components.
func (b Bivector) Magnitude() float64 {
	var sq float64
	for _, v := range b {
		sq += v * v
	}

	return math.Sqrt(sq)
}

// Scale returns s·b.
func (b Bivector) Scale(s float64) Bivector {
	for k := range b {
		b[k] *= s
	}

	return b
}

// Normalize returns b scaled to unit magnitude. ok is false, and the zero
// bivector is returned, when the magnitude is below lattice.Epsilon.
func (b Bivector) Normalize() (unit Bivector, ok bool) {
	m := b.Magnitude()
	if !(m >= lattice.Epsilon) { // also rejects NaN
		return Bivector{}, false
	}

	return b.Scale(1 / m), true
}

// IsZero reports whether every component is exactly zero.
func (b Bivector) IsZero() bool { return b == Bivector{} }

// generator returns the antisymmetric 4×4 matrix M of the plane, oriented so
// that for b = u∧w with orthonormal u, w: M·u = w and M·w = −u.
func (b Bivector) generator() *matrix.Dense {
	m, _ := matrix.NewDense(4, 4) // fixed positive shape
	for k, p := range Pairs {
		i, j := p[0], p[1]
		_ = m.Set(i, j, -b[k])
		_ = m.Set(j, i, b[k])
	}

	return m
}

// fallbackPlane returns the unit plane v∧e_k for the lowest axis k whose wedge
// with v has non-zero magnitude. Used when v1 and v2 are antipodal and their
// own wedge vanishes.
func fallbackPlane(v [4]float64) Bivector {
	for k := 0; k < 4; k++ {
		var axis [4]float64
		axis[k] = 1
		if unit, ok := Wedge(v, axis).Normalize(); ok {
			return unit
		}
	}

	return Bivector{} // only reachable for a zero vector, which Point excludes
}
