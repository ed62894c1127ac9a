// SPDX-License-Identifier: MIT
// Package: cellgate/lattice
//
// lattice.go: construction and read-only queries of the 120-vertex lattice.
//
// Contract:
//   • Generate builds the lattice once from the canonical families and runs
//     the construction self-check (count, unit norm, pairwise distinctness).
//   • A *Lattice is immutable after Generate returns; all methods are safe
//     for concurrent use without locking.
//   • Every vertex carries a pinned incidence identifier in [1, IncidenceIDs]
//     assigned at construction as (index mod IncidenceIDs) + 1.
//
// Complexity:
//   • Generate: O(C·V) for C candidate tuples (768) and V accepted vertices.
//   • NearestNeighbors: O(V log V) per call, V = 120.

package lattice

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"
)

// Lattice is the immutable ordered vertex set.
type Lattice struct {
	points []Point
	ids    []uint8 // pinned incidence identifier per vertex, 1..IncidenceIDs
}

// Neighbor is one result of a nearest-neighbor query.
type Neighbor struct {
	Index    int     // vertex index in the lattice
	Distance float64 // Euclidean distance to the query point
}

// Generate builds and validates the canonical 120-vertex lattice.
// Errors wrap ErrMalformed (ErrVertexCount, ErrNotUnit, ErrDuplicateVertex);
// callers must treat any error as fatal.
func Generate() (*Lattice, error) {
	return generate(canonicalFamilies())
}

var canonical = sync.OnceValues(Generate)

// Canonical returns the process-wide lattice, built on first use.
// Repeated calls return the same instance and the same error.
func Canonical() (*Lattice, error) { return canonical() }

// Families returns a copy of the canonical generating families.
func Families() []Family { return canonicalFamilies() }

// generate expands families in order and deduplicates by coordinate equality.
func generate(families []Family) (*Lattice, error) {
	perms := permutations4()
	pts := make([]Point, 0, VertexCount)

	for _, fam := range families {
		for _, perm := range perms {
			if fam.Filter == EvenPermutations && !isEven(perm) {
				continue
			}
			var tuple [4]float64
			for i := range tuple {
				tuple[i] = fam.Base[perm[i]]
			}
			for mask := 0; mask < signPatterns; mask++ {
				signed := tuple
				for i := range signed {
					if mask&(1<<i) != 0 {
						signed[i] = -signed[i]
					}
				}
				p, err := NewPoint(signed, kindOf(signed))
				if err != nil {
					return nil, fmt.Errorf("Generate: family %s: %w", fam.Name, err)
				}
				if !containsPoint(pts, p) {
					pts = append(pts, p)
				}
			}
		}
	}

	ids := make([]uint8, len(pts))
	for i := range pts {
		ids[i] = uint8(i%IncidenceIDs + 1)
	}
	l := &Lattice{points: pts, ids: ids}
	if err := l.Validate(Epsilon); err != nil {
		return nil, err
	}

	return l, nil
}

// kindOf tags a vertex by the sign of its first non-zero coordinate:
// positive → Object, negative → Relation. Antipodes get opposite kinds.
func kindOf(c [4]float64) Kind {
	for _, v := range c {
		if v > 0 {
			return Object
		}
		if v < 0 {
			return Relation
		}
	}

	return Object
}

// containsPoint reports whether p coincides with any point of pts.
func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q.Equal(p, Epsilon) {
			return true
		}
	}

	return false
}

// Validate re-runs the construction self-check with tolerance eps.
// Errors: ErrVertexCount, ErrNotUnit, ErrDuplicateVertex (all wrap ErrMalformed).
// Complexity: O(V²).
func (l *Lattice) Validate(eps float64) error {
	if l == nil || len(l.points) != VertexCount || len(l.ids) != len(l.points) {
		n := 0
		if l != nil {
			n = len(l.points)
		}
		return fmt.Errorf("Validate: got %d vertices, want %d: %w", n, VertexCount, ErrVertexCount)
	}
	for i, p := range l.points {
		if math.Abs(p.Norm()-1) >= eps {
			return fmt.Errorf("Validate: vertex %d norm %.17g: %w", i, p.Norm(), ErrNotUnit)
		}
		for j := i + 1; j < len(l.points); j++ {
			if p.Distance(l.points[j]) < eps {
				return fmt.Errorf("Validate: vertices %d and %d: %w", i, j, ErrDuplicateVertex)
			}
		}
	}

	return nil
}

// Len returns the number of vertices.
func (l *Lattice) Len() int { return len(l.points) }

// Vertex returns the i-th vertex.
// Errors: ErrVertexIndex.
func (l *Lattice) Vertex(i int) (Point, error) {
	if i < 0 || i >= len(l.points) {
		return Point{}, latticeErrorf("Vertex", ErrVertexIndex)
	}

	return l.points[i], nil
}

// Points returns a copy of all vertices in lattice order.
func (l *Lattice) Points() []Point { return slices.Clone(l.points) }

// IncidenceID returns the pinned incidence identifier (1..IncidenceIDs) of vertex i.
// Errors: ErrVertexIndex.
func (l *Lattice) IncidenceID(i int) (int, error) {
	if i < 0 || i >= len(l.ids) {
		return 0, latticeErrorf("IncidenceID", ErrVertexIndex)
	}

	return int(l.ids[i]), nil
}

// IndexOf returns the index of the vertex equal to p within Epsilon.
func (l *Lattice) IndexOf(p Point) (int, bool) {
	for i, q := range l.points {
		if q.Equal(p, Epsilon) {
			return i, true
		}
	}

	return -1, false
}

// NearestNeighbors returns the k vertices closest to target, sorted by
// ascending distance; ties are broken by vertex index. k above Len() is clamped.
// Errors: ErrInvalidK when k < 1.
func (l *Lattice) NearestNeighbors(target Point, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, latticeErrorf("NearestNeighbors", ErrInvalidK)
	}
	all := make([]Neighbor, len(l.points))
	for i, p := range l.points {
		all[i] = Neighbor{Index: i, Distance: p.Distance(target)}
	}
	slices.SortFunc(all, func(a, b Neighbor) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	if k > len(all) {
		k = len(all)
	}

	return all[:k], nil
}

// Nearest returns the single closest vertex (k = 1) with a linear scan.
// The first minimal index wins on ties.
func (l *Lattice) Nearest(target Point) Neighbor {
	best := Neighbor{Index: -1, Distance: math.Inf(1)}
	for i, p := range l.points {
		if d := p.Distance(target); d < best.Distance {
			best = Neighbor{Index: i, Distance: d}
		}
	}

	return best
}
