// Package gate runs the eight-tier accept/reject decision for a proposed
// transition between two points of R⁴.
//
// A Pipeline is built once over an immutable lattice and incidence design
// (NewDefault uses lattice.Canonical and incidence.Fano) and is then safe for
// concurrent use. SubmitTransition snaps the raw source and target onto the
// lattice and runs, in order:
//
//  1. identification : snap both inputs; too far or not normalizable → UnmappableState
//  2. measure        : scalar invariant of both snapped points (Measure)
//  3. tolerance      : |m(s) − m(t)| ≤ Tolerance(depth) → else ToleranceExceeded
//  4. incidence      : pinned ids of s and t form a line with the context → else IncidenceViolation
//  5. construction   : rotor.FromPoints(s, t) is a unit rotor → else DegenerateRotor
//  6. application    : the rotor carries s within Epsilon of t → else RotorMismatch
//  7. invariance     : measure of the rotated point still matches t → else InvarianceDrift
//  8. acceptance     : Accepted = true
//
// The first failing tier ends the call. Failures are reported in Result, not
// as errors; Result.Err maps them onto sentinel errors for errors.Is.
//
// Tolerance(depth) = baseTolerance·φ^depth, so nested validations get
// geometrically more slack.
//
// Observers (WithObserver) see every tier entry and every result; the
// metrics package provides a Prometheus implementation. SubmitBatch validates
// many transitions in parallel and keeps input order.
package gate
