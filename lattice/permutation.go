// SPDX-License-Identifier: MIT

package lattice

// permutations4 returns all 24 permutations of [0,1,2,3] in lexicographic order.
func permutations4() [][4]int {
	out := make([][4]int, 0, 24)
	p := [4]int{0, 1, 2, 3}
	for {
		out = append(out, p)
		if !nextPermutation(&p) {
			return out
		}
	}
}

// nextPermutation advances p to its lexicographic successor in place.
// It reports false once p is the last (descending) permutation.
func nextPermutation(p *[4]int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// inversions counts pairs i<j with p[i] > p[j].
func inversions(p [4]int) int {
	n := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				n++
			}
		}
	}

	return n
}

// isEven reports whether p has even parity.
func isEven(p [4]int) bool { return inversions(p)%2 == 0 }
