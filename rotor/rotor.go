// SPDX-License-Identifier: MIT
// Package: cellgate/rotor
//
// rotor.go: construction and application of rotors between two points.
//
// Contract:
//   • FromPoints(v1, v2) returns (cos(θ/2), B̂·sin(θ/2)) where θ is the angle
//     between v1 and v2 and B̂ the unit plane of v1∧v2.
//   • θ ≈ 0 (|v1∧v2| < Epsilon, v1·v2 > 0): identity rotor (1, 0).
//   • θ ≈ π (|v1∧v2| < Epsilon, v1·v2 < 0): plane pinned to v1∧e_k for the
//     lowest axis k with non-zero wedge magnitude; θ = π.
//   • Apply rotates a point by θ inside B̂ and re-normalizes the result.
//
// Determinism:
//   • Pure functions over values; no shared state, safe for concurrent use.

package rotor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/matrix"
)

// Rotor is a (scalar, bivector) pair representing a rotation of R⁴.
type Rotor struct {
	scalar float64
	plane  Bivector
}

// New returns the rotor (scalar, b) without normalization.
// Use IsValid to check it before use.
func New(scalar float64, b Bivector) Rotor { return Rotor{scalar: scalar, plane: b} }

// Identity returns the rotor (1, 0).
func Identity() Rotor { return Rotor{scalar: 1} }

// FromPoints builds the rotor carrying v1 onto v2 within the plane they span.
//
// The plane is v1∧u with u = v2 − (v1·v2)·v1, equal to v1∧v2 but free of
// cancellation when v2 ≈ −v1. The angle is acos(clamp(v1·v2, −1, 1)),
// evaluated as atan2(|u|, v1·v2) so it stays accurate near 0 and π.
func FromPoints(v1, v2 lattice.Point) Rotor {
	a, b := v1.Coords(), v2.Coords()
	d := v1.Dot(v2)
	var u [4]float64
	var uu float64
	for i := range u {
		u[i] = b[i] - d*a[i]
		uu += u[i] * u[i]
	}
	dot := math.Max(-1, math.Min(1, d))

	unit, ok := Wedge(a, u).Normalize()
	angle := math.Atan2(math.Sqrt(uu), dot)
	if !ok {
		if dot >= 0 {
			return Identity()
		}
		unit, angle = fallbackPlane(a), math.Pi
	}
	half := angle / 2

	return Rotor{scalar: math.Cos(half), plane: unit.Scale(math.Sin(half))}
}

// Scalar returns the scalar part.
func (r Rotor) Scalar() float64 { return r.scalar }

// Bivector returns the bivector part.
func (r Rotor) Bivector() Bivector { return r.plane }

// Magnitude returns sqrt(scalar² + |bivector|²).
func (r Rotor) Magnitude() float64 {
	m := r.plane.Magnitude()

	return math.Sqrt(r.scalar*r.scalar + m*m)
}

// IsValid reports whether |Magnitude − 1| < eps.
func (r Rotor) IsValid(eps float64) bool {
	return math.Abs(r.Magnitude()-1) < eps // NaN compares false
}

// Angle returns the rotation angle θ = 2·atan2(|B|, s) in [0, 2π].
// Rotors built by FromPoints have s >= 0 and therefore θ in [0, π].
func (r Rotor) Angle() float64 { return 2 * math.Atan2(r.plane.Magnitude(), r.scalar) }

// finite reports whether every component is a finite number.
func (r Rotor) finite() bool {
	if math.IsNaN(r.scalar) || math.IsInf(r.scalar, 0) {
		return false
	}
	for _, v := range r.plane {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Plane returns the unit rotation plane; ok is false for the identity.
func (r Rotor) Plane() (Bivector, bool) { return r.plane.Normalize() }

// Reverse returns the inverse rotation (scalar, −bivector).
func (r Rotor) Reverse() Rotor { return Rotor{scalar: r.scalar, plane: r.plane.Scale(-1)} }

// Equal reports whether both parts agree component-wise within eps.
func (r Rotor) Equal(o Rotor, eps float64) bool {
	if math.Abs(r.scalar-o.scalar) >= eps {
		return false
	}
	for k := range r.plane {
		if math.Abs(r.plane[k]-o.plane[k]) >= eps {
			return false
		}
	}

	return true
}

// Matrix returns the 4×4 rotation matrix R = I + sinθ·M + (1−cosθ)·M²,
// M the generator of the unit plane. The identity rotor yields I.
// Errors: ErrNonFinite.
func (r Rotor) Matrix() (*matrix.Dense, error) {
	if !r.finite() {
		return nil, fmt.Errorf("Rotor.Matrix: %w", ErrNonFinite)
	}
	id, err := matrix.NewIdentity(4)
	if err != nil {
		return nil, err
	}
	mag := r.plane.Magnitude()
	if mag == 0 {
		return id, nil
	}
	theta := r.Angle() // s < 0 encodes θ > π

	m := r.plane.Scale(1 / mag).generator()
	m2, err := matrix.Mul(m, m)
	if err != nil {
		return nil, fmt.Errorf("Rotor.Matrix: %w", err)
	}
	sinPart, err := matrix.Scale(m, math.Sin(theta))
	if err != nil {
		return nil, fmt.Errorf("Rotor.Matrix: %w", err)
	}
	cosPart, err := matrix.Scale(m2, 1-math.Cos(theta))
	if err != nil {
		return nil, fmt.Errorf("Rotor.Matrix: %w", err)
	}
	out, err := matrix.Add(id, sinPart)
	if err != nil {
		return nil, fmt.Errorf("Rotor.Matrix: %w", err)
	}
	if out, err = matrix.Add(out, cosPart); err != nil {
		return nil, fmt.Errorf("Rotor.Matrix: %w", err)
	}

	return out, nil
}

// Apply rotates p by the rotor and re-normalizes the result. The tag of p is kept.
// Errors: ErrNonFinite when the rotor holds NaN or ±Inf components.
func (r Rotor) Apply(p lattice.Point) (lattice.Point, error) {
	rm, err := r.Matrix()
	if err != nil {
		return lattice.Point{}, err
	}
	c := p.Coords()
	y, err := matrix.MatVec(rm, c[:])
	if err != nil {
		return lattice.Point{}, fmt.Errorf("Rotor.Apply: %w", err)
	}
	out, err := lattice.NewPoint([4]float64{y[0], y[1], y[2], y[3]}, p.Kind())
	if err != nil {
		return lattice.Point{}, fmt.Errorf("Rotor.Apply: %w", err)
	}

	return out, nil
}

// String formats the rotor for debugging.
func (r Rotor) String() string {
	b := r.plane

	return fmt.Sprintf("rotor(%.6g; %.6g %.6g %.6g %.6g %.6g %.6g)", r.scalar, b[0], b[1], b[2], b[3], b[4], b[5])
}
