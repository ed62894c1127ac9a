// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"

	"github.com/katalvlaran/cellgate/rotor"
)

// Tier identifies one stage of the pipeline, 1..8 in execution order.
type Tier uint8

const (
	// TierIdentification snaps both inputs onto the lattice.
	TierIdentification Tier = iota + 1
	// TierMeasure computes the scalar invariant of both snapped points.
	TierMeasure
	// TierTolerance compares the two measures within Tolerance(depth).
	TierTolerance
	// TierIncidence checks that source, target and context form a line.
	TierIncidence
	// TierConstruction builds the rotor carrying source onto target.
	TierConstruction
	// TierApplication applies the rotor to the snapped source.
	TierApplication
	// TierInvariance re-checks the measure of the rotated point.
	TierInvariance
	// TierAcceptance marks the transition accepted.
	TierAcceptance
)

// TierCount is the number of tiers.
const TierCount = int(TierAcceptance)

var tierNames = [...]string{
	TierIdentification: "identification",
	TierMeasure:        "measure",
	TierTolerance:      "tolerance",
	TierIncidence:      "incidence",
	TierConstruction:   "construction",
	TierApplication:    "application",
	TierInvariance:     "invariance",
	TierAcceptance:     "acceptance",
}

// String returns the lower-case tier name.
func (t Tier) String() string {
	if t >= TierIdentification && t <= TierAcceptance {
		return tierNames[t]
	}

	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// ErrorKind classifies a rejection. None means the transition was accepted.
type ErrorKind uint8

const (
	None ErrorKind = iota
	UnmappableState
	ToleranceExceeded
	IncidenceViolation
	DegenerateRotor
	RotorMismatch
	InvarianceDrift
)

var kindNames = [...]string{
	None:               "none",
	UnmappableState:    "unmappable_state",
	ToleranceExceeded:  "tolerance_exceeded",
	IncidenceViolation: "incidence_violation",
	DegenerateRotor:    "degenerate_rotor",
	RotorMismatch:      "rotor_mismatch",
	InvarianceDrift:    "invariance_drift",
}

// String returns a snake_case name, suitable as a metrics label.
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Transition is one input of SubmitBatch.
type Transition struct {
	Source    [4]float64
	Target    [4]float64
	ContextID int
	Depth     uint
}

// Result is the outcome of one SubmitTransition call.
//
// Accepted, TierReached, Kind and Rotor form the public contract. The other
// fields are diagnostics filled in as far as the pipeline got: fields of a
// tier that never ran keep their zero value (indices stay -1).
type Result struct {
	Accepted    bool
	TierReached Tier
	Kind        ErrorKind
	Rotor       *rotor.Rotor // set once TierConstruction succeeded

	ContextID int
	Depth     uint
	Tolerance float64 // Tolerance(Depth)

	SourceIndex, TargetIndex int     // snapped vertex indices
	SourceSnap, TargetSnap   float64 // snap distances
	SourceID, TargetID       int     // pinned incidence identifiers

	SourceMeasure, TargetMeasure float64
	RotatedMeasure               float64
	Residual                     float64 // |apply(rotor, source) − target|
}

// Err returns nil for an accepted result and otherwise an error wrapping the
// sentinel of Kind.
func (r Result) Err() error {
	if r.Accepted || r.Kind == None || int(r.Kind) >= len(kindErrors) {
		return nil
	}

	return fmt.Errorf("tier %d (%s): %w", r.TierReached, r.TierReached, kindErrors[r.Kind])
}
