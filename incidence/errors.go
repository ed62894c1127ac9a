// SPDX-License-Identifier: MIT
// Package: cellgate/incidence
//
// errors.go: sentinel errors for the incidence package.
//
// Construction violations all wrap ErrMalformed; they are fatal and must stop
// initialization. ErrInvalidPoint is the only per-call error.

package incidence

import (
	"errors"
	"fmt"
)

// ErrMalformed is the umbrella for every design-invariant violation.
var ErrMalformed = errors.New("incidence: malformed design")

var (
	// ErrLineCount indicates the design does not have exactly Points lines.
	ErrLineCount = fmt.Errorf("%w: wrong line count", ErrMalformed)

	// ErrLineSize indicates a line without exactly LineSize distinct identifiers.
	ErrLineSize = fmt.Errorf("%w: line must hold 3 distinct points", ErrMalformed)

	// ErrPointRange indicates an identifier outside [1, Points].
	ErrPointRange = fmt.Errorf("%w: point identifier out of range", ErrMalformed)

	// ErrPointDegree indicates an identifier that is not on exactly LineSize lines.
	ErrPointDegree = fmt.Errorf("%w: point not on exactly 3 lines", ErrMalformed)

	// ErrPairCoverage indicates a pair of identifiers not sharing exactly one line.
	ErrPairCoverage = fmt.Errorf("%w: pair not on exactly one line", ErrMalformed)
)

// ErrInvalidPoint indicates a per-call argument outside [1, Points] or a repeated id.
var ErrInvalidPoint = errors.New("incidence: invalid point identifier")
