// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Kind is the binary category tag carried by every Point.
type Kind uint8

const (
	// Object marks object-like points.
	Object Kind = iota
	// Relation marks relation-like points.
	Relation
)

// String returns a readable name for logs and errors.
func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Relation:
		return "relation"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Point is a unit vector in R⁴ with a category tag.
// Points are values: they are normalized on construction and never mutated.
// The zero value is not a valid Point; build points with NewPoint.
type Point struct {
	c    [4]float64
	kind Kind
}

// NewPoint normalizes coords to unit length and tags it with kind.
// Errors: ErrNonFinite for NaN/±Inf coordinates, ErrZeroVector when the
// length is below Epsilon.
func NewPoint(coords [4]float64, kind Kind) (Point, error) {
	var sq float64
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, latticeErrorf("NewPoint", ErrNonFinite)
		}
		sq += v * v
	}
	norm := math.Sqrt(sq)
	if norm < Epsilon || math.IsInf(norm, 0) {
		return Point{}, latticeErrorf("NewPoint", ErrZeroVector)
	}

	var p Point
	for i, v := range coords {
		p.c[i] = v / norm
	}
	p.kind = kind

	return p, nil
}

// Coords returns a copy of the coordinates.
func (p Point) Coords() [4]float64 { return p.c }

// Kind returns the category tag.
func (p Point) Kind() Kind { return p.kind }

// Dot returns the Euclidean inner product.
func (p Point) Dot(q Point) float64 {
	return p.c[0]*q.c[0] + p.c[1]*q.c[1] + p.c[2]*q.c[2] + p.c[3]*q.c[3]
}

// Norm returns the Euclidean length (1 within Epsilon for valid points).
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	var sq, d float64
	for i := range p.c {
		d = p.c[i] - q.c[i]
		sq += d * d
	}

	return math.Sqrt(sq)
}

// Equal reports whether p and q coincide within eps. Tags are ignored:
// identity is positional.
func (p Point) Equal(q Point, eps float64) bool { return p.Distance(q) < eps }

// Neg returns the antipodal point with the opposite kind.
func (p Point) Neg() Point {
	out := Point{kind: Object}
	if p.kind == Object {
		out.kind = Relation
	}
	for i, v := range p.c {
		out.c[i] = -v
	}

	return out
}

// String formats the point for debugging.
func (p Point) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g, %.6g)/%s", p.c[0], p.c[1], p.c[2], p.c[3], p.kind)
}
