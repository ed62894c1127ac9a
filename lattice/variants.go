// SPDX-License-Identifier: MIT
// Package: cellgate/lattice
//
// variants.go: canonical coordinate families of the 120-vertex lattice.
//
// Design:
//   • Single source of truth for the three generating families.
//   • Each family is a base 4-tuple, a permutation filter and the 16 sign
//     patterns; duplicates produced by signed zeros are removed by coordinate
//     equality during generation.
//   • Datasets are package-level values and never mutated.
//
// Families (unnormalized):
//   • A: even permutations of (1,1,1,1)        → 16 points  ½(±1,±1,±1,±1)
//   • B: all permutations of (1,0,0,0)         →  8 points  (±1,0,0,0) and permutations
//   • C: even permutations of (φ,1,1/φ,0)      → 96 points  ½(±φ,±1,±1/φ,0) even perms
//
// Determinism:
//   • Families are expanded in the order A, B, C; permutations in lexicographic
//     order; sign masks 0..15 where bit i negates coordinate i.

package lattice

// Phi is the golden ratio (1+√5)/2.
const Phi = 1.61803398874989484820458683436563811772030917980576

// Numeric and structural constants.
const (
	// Epsilon is the coordinate-equality and unit-norm tolerance.
	Epsilon = 1e-10

	// VertexCount is the exact size of a well-formed lattice.
	VertexCount = 120

	// IncidenceIDs is the number of incidence identifiers (1..IncidenceIDs).
	IncidenceIDs = 7

	// signPatterns is the number of sign assignments of a 4-tuple.
	signPatterns = 16
)

// PermutationFilter selects which permutations of a base tuple are expanded.
type PermutationFilter uint8

const (
	// AllPermutations expands every permutation.
	AllPermutations PermutationFilter = iota
	// EvenPermutations expands permutations with an even inversion count.
	EvenPermutations
)

// Family is one generating coordinate family.
type Family struct {
	Name   string
	Base   [4]float64
	Filter PermutationFilter
}

// canonicalFamilies returns the three families of the 120-vertex lattice.
func canonicalFamilies() []Family {
	return []Family{
		{Name: "A", Base: [4]float64{1, 1, 1, 1}, Filter: EvenPermutations},
		{Name: "B", Base: [4]float64{1, 0, 0, 0}, Filter: AllPermutations},
		{Name: "C", Base: [4]float64{Phi, 1, 1 / Phi, 0}, Filter: EvenPermutations},
	}
}
