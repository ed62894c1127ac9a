// Package rotor constructs and applies rotation operators ("rotors") between
// two points of R⁴.
//
// A Rotor is a (scalar, Bivector) pair. FromPoints builds the rotor that
// carries v1 onto v2 inside the plane v1∧v2; Apply rotates any point by the
// same angle inside the same plane and leaves the orthogonal plane fixed.
//
// Degenerate inputs follow fixed conventions: equal points give the identity
// rotor, antipodal points rotate by π inside v1∧e_k for the lowest axis k that
// is not parallel to v1.
package rotor
