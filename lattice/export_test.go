// SPDX-License-Identifier: MIT

package lattice

// Test bridge: exposes unexported construction helpers to lattice_test only.
var (
	GenerateFamilies = generate
	Permutations4    = permutations4
	IsEven           = isEven
	Inversions       = inversions
)
