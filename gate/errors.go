// SPDX-License-Identifier: MIT
// Package: cellgate/gate
//
// errors.go: sentinel errors of the validation pipeline.
//
// Error policy:
//   • Construction errors (New) are returned as error values and are fatal:
//     a pipeline is never built over a malformed lattice or design.
//   • Tier failures are not errors: SubmitTransition reports them in
//     Result.Kind. Result.Err maps a kind to one of the sentinels below for
//     callers that prefer errors.Is.

package gate

import "errors"

// Construction errors.
var (
	// ErrNilLattice indicates New was called without a lattice.
	ErrNilLattice = errors.New("gate: lattice is nil")

	// ErrNilStructure indicates New was called without an incidence structure.
	ErrNilStructure = errors.New("gate: incidence structure is nil")
)

// Tier failure sentinels, one per ErrorKind.
var (
	ErrUnmappableState    = errors.New("gate: unmappable state")
	ErrToleranceExceeded  = errors.New("gate: tolerance exceeded")
	ErrIncidenceViolation = errors.New("gate: incidence violation")
	ErrDegenerateRotor    = errors.New("gate: degenerate rotor")
	ErrRotorMismatch      = errors.New("gate: rotor mismatch")
	ErrInvarianceDrift    = errors.New("gate: invariance drift")
)

// kindErrors maps each failure kind to its sentinel; index None is unused.
var kindErrors = [...]error{
	None:               nil,
	UnmappableState:    ErrUnmappableState,
	ToleranceExceeded:  ErrToleranceExceeded,
	IncidenceViolation: ErrIncidenceViolation,
	DegenerateRotor:    ErrDegenerateRotor,
	RotorMismatch:      ErrRotorMismatch,
	InvarianceDrift:    ErrInvarianceDrift,
}

// Panic messages of the option constructors.
const (
	panicBaseToleranceInvalid = "gate: WithBaseTolerance: tolerance must be finite and > 0"
	panicMaxSnapInvalid       = "gate: WithMaxSnapDistance: distance must be finite and > 0"
	panicEpsilonInvalid       = "gate: WithEpsilon: eps must be finite and > 0"
	panicWeightsInvalid       = "gate: WithWeights: weights must be finite, >= 0 and not all zero"
	panicMeasureNil           = "gate: WithMeasure: measure is nil"
	panicLoggerNil            = "gate: WithLogger: logger is nil"
	panicObserverNil          = "gate: WithObserver: observer is nil"
)
