// Package matrix provides the small dense linear-algebra kernel used by the
// geometric packages of cellgate.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels: Add, Scale, Mul, Transpose, MatVec, AllClose, NewIdentity.
//   - Central validators returning plain sentinels (errors.go).
//
// Callers in this module work with tiny fixed shapes: 4×4 rotation matrices
// built by package rotor and the 7×7 point/line incidence matrix checked by
// package incidence. Every kernel allocates a fresh result and never mutates
// its operands.
package matrix
