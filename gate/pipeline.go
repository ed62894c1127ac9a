// SPDX-License-Identifier: MIT
// Package: cellgate/gate
//
// pipeline.go: the eight-tier accept/reject decision for one transition.
//
// Contract:
//   • Tiers run in order 1..8; the first failing tier ends the call and its
//     kind is reported. Later tiers are never entered.
//   • SubmitTransition never panics and never returns an error; every outcome
//     is a Result built fresh for the call.
//   • Identical inputs on the same Pipeline give identical Results.
//
// Concurrency:
//   • A *Pipeline is immutable after New; SubmitTransition is safe for
//     concurrent use as long as the configured observers are.

package gate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellgate/incidence"
	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/rotor"
)

// Pipeline validates transitions against one lattice and one incidence design.
type Pipeline struct {
	lat      *lattice.Lattice
	inc      *incidence.Structure
	opts     Options
	newRotor func(v1, v2 lattice.Point) rotor.Rotor
}

// New builds a pipeline over lat and inc.
// Both are re-validated; errors wrap lattice.ErrMalformed or
// incidence.ErrMalformed, or are ErrNilLattice / ErrNilStructure.
// Option constructors panic on nonsensical values.
func New(lat *lattice.Lattice, inc *incidence.Structure, opts ...Option) (*Pipeline, error) {
	if lat == nil {
		return nil, fmt.Errorf("gate.New: %w", ErrNilLattice)
	}
	if inc == nil {
		return nil, fmt.Errorf("gate.New: %w", ErrNilStructure)
	}
	if err := lat.Validate(lattice.Epsilon); err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}
	if err := inc.Validate(); err != nil {
		return nil, fmt.Errorf("gate.New: %w", err)
	}

	p := &Pipeline{lat: lat, inc: inc, opts: gatherOptions(opts...), newRotor: rotor.FromPoints}
	p.opts.logger.Info("pipeline ready",
		"vertices", lat.Len(),
		"base_tolerance", p.opts.baseTolerance,
		"max_snap_distance", p.opts.maxSnap,
		"epsilon", p.opts.eps,
		"weights", p.opts.weights,
	)

	return p, nil
}

// NewDefault builds a pipeline over lattice.Canonical and incidence.Fano.
func NewDefault(opts ...Option) (*Pipeline, error) {
	lat, err := lattice.Canonical()
	if err != nil {
		return nil, fmt.Errorf("gate.NewDefault: %w", err)
	}
	inc, err := incidence.Fano()
	if err != nil {
		return nil, fmt.Errorf("gate.NewDefault: %w", err)
	}

	return New(lat, inc, opts...)
}

// Tolerance returns baseTolerance·φ^depth.
func (p *Pipeline) Tolerance(depth uint) float64 {
	return p.opts.baseTolerance * math.Pow(lattice.Phi, float64(depth))
}

// BaseTolerance returns tolerance(0).
func (p *Pipeline) BaseTolerance() float64 { return p.opts.baseTolerance }

// MaxSnapDistance returns the identification threshold.
func (p *Pipeline) MaxSnapDistance() float64 { return p.opts.maxSnap }

// Epsilon returns the rotor tolerance.
func (p *Pipeline) Epsilon() float64 { return p.opts.eps }

// Lattice returns the lattice the pipeline snaps onto.
func (p *Pipeline) Lattice() *lattice.Lattice { return p.lat }

// Incidence returns the incidence design the pipeline checks against.
func (p *Pipeline) Incidence() *incidence.Structure { return p.inc }

// SubmitTransition runs the eight tiers on (source, target) within context
// contextID at nesting depth depth.
//
// A contextID outside [1,7] can never lie on a line and is rejected at
// TierIncidence. Zero-length or non-finite raw vectors are rejected at
// TierIdentification.
func (p *Pipeline) SubmitTransition(source, target [4]float64, contextID int, depth uint) Result {
	st := state{
		raw: [2][4]float64{source, target},
		res: Result{
			ContextID:   contextID,
			Depth:       depth,
			Tolerance:   p.Tolerance(depth),
			SourceIndex: -1,
			TargetIndex: -1,
		},
	}

	for i, run := range stages {
		tier := Tier(i + 1)
		st.res.TierReached = tier
		for _, obs := range p.opts.observers {
			obs.OnTier(tier)
		}
		if kind := run(p, &st); kind != None {
			st.res.Kind = kind
			p.opts.logger.Debug("transition rejected",
				"tier", tier.String(),
				"kind", kind.String(),
				"context", contextID,
				"depth", depth,
			)
			p.finish(st.res)

			return st.res
		}
	}
	p.opts.logger.Debug("transition accepted",
		"source", st.res.SourceIndex,
		"target", st.res.TargetIndex,
		"context", contextID,
		"depth", depth,
	)
	p.finish(st.res)

	return st.res
}

func (p *Pipeline) finish(r Result) {
	for _, obs := range p.opts.observers {
		obs.OnResult(r)
	}
}
