// SPDX-License-Identifier: MIT
// Package: cellgate/lattice
//
// errors.go: sentinel errors for the lattice package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Construction failures (count, norm, duplicates) all wrap ErrMalformed so
//     a caller can refuse to start with a single check.
//   • Per-call helpers (NewPoint, NearestNeighbors, Vertex) return their own
//     sentinels and never panic.

package lattice

import (
	"errors"
	"fmt"
)

// ErrMalformed is the umbrella for every construction-time invariant violation.
// A lattice that fails it must never be used.
var ErrMalformed = errors.New("lattice: malformed lattice")

// ErrVertexCount indicates the generated set does not hold exactly VertexCount points.
var ErrVertexCount = fmt.Errorf("%w: wrong vertex count", ErrMalformed)

// ErrNotUnit indicates a generated point does not lie on the unit sphere within Epsilon.
var ErrNotUnit = fmt.Errorf("%w: vertex not on unit sphere", ErrMalformed)

// ErrDuplicateVertex indicates two generated points coincide within Epsilon.
var ErrDuplicateVertex = fmt.Errorf("%w: duplicate vertex", ErrMalformed)

// ErrZeroVector indicates a coordinate tuple too short to normalize.
var ErrZeroVector = errors.New("lattice: zero-length vector")

// ErrNonFinite indicates a NaN or ±Inf coordinate.
var ErrNonFinite = errors.New("lattice: non-finite coordinate")

// ErrInvalidK indicates a neighbor count below 1.
var ErrInvalidK = errors.New("lattice: k must be >= 1")

// ErrVertexIndex indicates a vertex index outside [0, Len()).
var ErrVertexIndex = errors.New("lattice: vertex index out of range")

// latticeErrorf attaches method context to a sentinel.
func latticeErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
