// SPDX-License-Identifier: MIT

package gate

import (
	"math"

	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/rotor"
)

// state carries the values one tier hands to the next.
type state struct {
	raw      [2][4]float64 // source, target as submitted
	src, dst lattice.Point // snapped
	rot      rotor.Rotor
	rotated  lattice.Point
	res      Result
}

// stage runs one tier and returns None on success.
type stage func(p *Pipeline, st *state) ErrorKind

// stages lists the tiers in execution order; index i runs Tier(i+1).
var stages = [TierCount]stage{
	(*Pipeline).identify,
	(*Pipeline).extractMeasures,
	(*Pipeline).checkTolerance,
	(*Pipeline).checkIncidence,
	(*Pipeline).construct,
	(*Pipeline).apply,
	(*Pipeline).reverify,
	(*Pipeline).accept,
}

// within reports |a−b| <= tol; NaN on either side fails.
func within(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// snap normalizes raw and returns its nearest vertex. ok is false for raw
// vectors that cannot be normalized and for snaps beyond maxSnap.
func (p *Pipeline) snap(raw [4]float64) (v lattice.Point, n lattice.Neighbor, ok bool) {
	q, err := lattice.NewPoint(raw, lattice.Object)
	if err != nil {
		return lattice.Point{}, lattice.Neighbor{Index: -1}, false
	}
	n = p.lat.Nearest(q)
	if v, err = p.lat.Vertex(n.Index); err != nil {
		return lattice.Point{}, n, false
	}

	return v, n, n.Distance <= p.opts.maxSnap
}

func (p *Pipeline) identify(st *state) ErrorKind {
	src, ns, ok := p.snap(st.raw[0])
	st.res.SourceIndex, st.res.SourceSnap = ns.Index, ns.Distance
	if !ok {
		return UnmappableState
	}
	dst, nt, ok := p.snap(st.raw[1])
	st.res.TargetIndex, st.res.TargetSnap = nt.Index, nt.Distance
	if !ok {
		return UnmappableState
	}
	st.src, st.dst = src, dst

	return None
}

func (p *Pipeline) extractMeasures(st *state) ErrorKind {
	st.res.SourceMeasure = p.opts.measure(st.src)
	st.res.TargetMeasure = p.opts.measure(st.dst)

	return None
}

func (p *Pipeline) checkTolerance(st *state) ErrorKind {
	if !within(st.res.SourceMeasure, st.res.TargetMeasure, st.res.Tolerance) {
		return ToleranceExceeded
	}

	return None
}

func (p *Pipeline) checkIncidence(st *state) ErrorKind {
	sid, err := p.lat.IncidenceID(st.res.SourceIndex)
	if err != nil {
		return IncidenceViolation
	}
	tid, err := p.lat.IncidenceID(st.res.TargetIndex)
	if err != nil {
		return IncidenceViolation
	}
	st.res.SourceID, st.res.TargetID = sid, tid
	if !p.inc.IsLine(sid, tid, st.res.ContextID) {
		return IncidenceViolation
	}

	return None
}

func (p *Pipeline) construct(st *state) ErrorKind {
	r := p.newRotor(st.src, st.dst)
	if !r.IsValid(p.opts.eps) {
		return DegenerateRotor
	}
	st.rot = r
	st.res.Rotor = &r

	return None
}

func (p *Pipeline) apply(st *state) ErrorKind {
	out, err := st.rot.Apply(st.src)
	if err != nil {
		st.res.Residual = math.Inf(1)

		return RotorMismatch
	}
	st.rotated = out
	st.res.Residual = out.Distance(st.dst)
	if !(st.res.Residual <= p.opts.eps) {
		return RotorMismatch
	}

	return None
}

func (p *Pipeline) reverify(st *state) ErrorKind {
	st.res.RotatedMeasure = p.opts.measure(st.rotated)
	if !within(st.res.RotatedMeasure, st.res.TargetMeasure, st.res.Tolerance) {
		return InvarianceDrift
	}

	return None
}

func (p *Pipeline) accept(st *state) ErrorKind {
	st.res.Accepted = true

	return None
}
