// Package lattice builds and queries the canonical 120-vertex lattice on the
// unit 3-sphere in R⁴ (the vertex set of the regular 600-cell).
//
// The lattice is generated once from three symmetric coordinate families
// parameterized by the golden ratio φ (see variants.go), validated, and then
// shared read-only:
//
//	lat, err := lattice.Canonical()
//	if err != nil {
//		// fatal: never run with a malformed lattice
//	}
//	p, _ := lattice.NewPoint([4]float64{1, 0.05, 0, 0}, lattice.Object)
//	n := lat.Nearest(p) // snap to the closest vertex
//
// Every vertex carries a pinned incidence identifier in 1..7 used by the
// validation pipeline to look up lines of the incidence design.
package lattice
