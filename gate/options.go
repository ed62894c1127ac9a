// SPDX-License-Identifier: MIT

// Package gate: functional configuration of the validation pipeline.
// This file defines:
//   - Option / Options (functional options over unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which applies options over the defaults.
//
// Panics are reserved for programmer error in option construction. Values
// read from files go through config.Config.Validate first, which reports
// the same conditions as errors.
package gate

import (
	"log/slog"
	"math"
)

// ---------- Defaults ----------

const (
	// DefaultBaseTolerance is tolerance(0); deeper calls scale it by φ^depth.
	DefaultBaseTolerance = 1e-9

	// DefaultMaxSnapDistance is 1/(2φ) = (√5 − 1)/4, half the lattice edge
	// length: a raw point farther than this from every vertex is unmappable.
	DefaultMaxSnapDistance = 0.30901699437494742

	// DefaultEpsilon bounds the rotor residual (TierApplication) and the rotor
	// unit-magnitude check (TierConstruction).
	DefaultEpsilon = 1e-10
)

// Options is the resolved pipeline configuration. Fields are unexported;
// build it with Option values.
type Options struct {
	baseTolerance float64
	maxSnap       float64
	eps           float64
	weights       [4]float64 // reported in logs; zero when a custom Measure is set
	measure       Measure
	logger        *slog.Logger
	observers     []Observer
}

// Option configures a Pipeline.
type Option func(*Options)

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		baseTolerance: DefaultBaseTolerance,
		maxSnap:       DefaultMaxSnapDistance,
		eps:           DefaultEpsilon,
		weights:       DefaultWeights,
		measure:       Diagonal(DefaultWeights),
		logger:        slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts in order over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isPositiveFinite(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// WithBaseTolerance sets tolerance(0).
// Panics when tol is not finite or not > 0.
func WithBaseTolerance(tol float64) Option {
	if !isPositiveFinite(tol) {
		panic(panicBaseToleranceInvalid)
	}

	return func(o *Options) { o.baseTolerance = tol }
}

// WithMaxSnapDistance sets the largest accepted distance between a raw input
// and its nearest vertex.
// Panics when d is not finite or not > 0.
func WithMaxSnapDistance(d float64) Option {
	if !isPositiveFinite(d) {
		panic(panicMaxSnapInvalid)
	}

	return func(o *Options) { o.maxSnap = d }
}

// WithEpsilon sets the rotor residual and unit-magnitude tolerance.
// Panics when eps is not finite or not > 0.
func WithEpsilon(eps float64) Option {
	if !isPositiveFinite(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWeights selects the Diagonal measure with weights w.
// Panics unless ValidWeights(w).
func WithWeights(w [4]float64) Option {
	if !ValidWeights(w) {
		panic(panicWeightsInvalid)
	}

	return func(o *Options) {
		o.weights = w
		o.measure = Diagonal(w)
	}
}

// WithMeasure installs a custom measure. Panics on nil.
func WithMeasure(m Measure) Option {
	if m == nil {
		panic(panicMeasureNil)
	}

	return func(o *Options) {
		o.weights = [4]float64{}
		o.measure = m
	}
}

// WithLogger routes pipeline logs to l. The default discards everything.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver adds obs to the observers notified on every tier entry and
// every result. May be given several times. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observers = append(o.observers, obs) }
}
