// Package cellgate is a deterministic geometric checker for proposed state
// transitions between points of R⁴.
//
// What is inside?
//
//	A small, dependency-light library that brings together:
//		• a canonical 120-vertex lattice on the unit 3-sphere, built once
//		• the 7-point/7-line incidence design used as a consistency oracle
//		• rotors: rotations of R⁴ built from two points and applied to any point
//		• an eight-tier accept/reject pipeline with a structured Result per call
//
// Guarantees:
//
//   - Immutable shared state: the lattice and the design are built once,
//     verified at construction and shared without locks
//   - Deterministic: identical inputs always give identical results
//   - No exceptions for rejections: every tier failure is a typed Result
//
// Subpackages:
//
//	matrix/    dense float64 matrices used by rotors and the incidence self-check
//	lattice/   Point, Kind and the 120-vertex Lattice with nearest-neighbor queries
//	incidence/ the Fano plane: lines, IsLine, LineThrough, N·Nᵀ = 2I + J check
//	rotor/     Bivector, Rotor, FromPoints, Apply
//	gate/      Pipeline, SubmitTransition, SubmitBatch, Tolerance, Observer
//	config/    YAML/TOML settings turned into gate options and a slog logger
//	metrics/   Prometheus observer for tiers and outcomes
//
// Quick example:
//
//	p, err := gate.NewDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := p.SubmitTransition([4]float64{1, 0, 0, 0}, [4]float64{0, 1, 0, 0}, 2, 0)
//	fmt.Println(r.Accepted, r.TierReached) // true acceptance
//
//	go get github.com/katalvlaran/cellgate
package cellgate
