// SPDX-License-Identifier: MIT
// Package: cellgate/metrics
//
// collector.go: Prometheus instrumentation of the validation pipeline.
//
// Contract:
//   • Collector implements gate.Observer; install it with gate.WithObserver.
//   • All series are created up front by NewCollector; OnTier and OnResult
//     only increment and are safe for concurrent use.
//
// Series:
//   • cellgate_tier_entered_total{tier}          tiers entered, by tier name
//   • cellgate_transitions_total{outcome,kind}   results, outcome accepted|rejected
//   • cellgate_tier_reached                      histogram of the last tier, 1..8

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/cellgate/gate"
)

const namespace = "cellgate"

// Outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Collector records pipeline events as Prometheus metrics.
type Collector struct {
	tierEntered *prometheus.CounterVec
	transitions *prometheus.CounterVec
	tierReached prometheus.Histogram
}

var _ gate.Observer = (*Collector)(nil)

// NewCollector creates the pipeline metrics and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registry panics, as with promauto.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	c := &Collector{
		tierEntered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_entered_total",
			Help:      "Pipeline tiers entered, by tier.",
		}, []string{"tier"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Validated transitions by outcome and error kind.",
		}, []string{"outcome", "kind"}),
		tierReached: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tier_reached",
			Help:      "Last tier reached per transition.",
			Buckets:   prometheus.LinearBuckets(1, 1, gate.TierCount),
		}),
	}
	// zero series so rates exist before the first event
	for t := gate.TierIdentification; t <= gate.TierAcceptance; t++ {
		c.tierEntered.WithLabelValues(t.String())
	}

	return c
}

// OnTier implements gate.Observer.
func (c *Collector) OnTier(t gate.Tier) { c.tierEntered.WithLabelValues(t.String()).Inc() }

// OnResult implements gate.Observer.
func (c *Collector) OnResult(r gate.Result) {
	outcome := OutcomeRejected
	if r.Accepted {
		outcome = OutcomeAccepted
	}
	c.transitions.WithLabelValues(outcome, r.Kind.String()).Inc()
	c.tierReached.Observe(float64(r.TierReached))
}
