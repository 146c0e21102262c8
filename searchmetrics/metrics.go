// Package searchmetrics exports search activity as Prometheus metrics.
//
// # Description
//
// Collector implements search.Observer. Pass it to any algorithm with
// search.WithObserver and register it once per process (or per registry in
// tests). Metrics:
//   - lvsearch_searches_total{algorithm,outcome}
//   - lvsearch_nodes_expanded_total{algorithm}
//   - lvsearch_solution_cost (successful searches only)
//   - lvsearch_frontier_peak
//
// # Thread Safety
//
// All operations are thread-safe via Prometheus's internal locking.
package searchmetrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvsearch/search"
)

const namespace = "lvsearch"

// Collector records search lifecycle events.
type Collector struct {
	// SearchesTotal counts finished searches.
	// Labels: algorithm, outcome (success, failure, cutoff, aborted)
	SearchesTotal *prometheus.CounterVec

	// NodesExpanded counts expansions as they happen.
	// Labels: algorithm
	NodesExpanded *prometheus.CounterVec

	// SolutionCost observes the path cost of every successful search.
	SolutionCost prometheus.Histogram

	// FrontierPeak observes the largest frontier of each finished search.
	FrontierPeak prometheus.Histogram
}

var _ search.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		NodesExpanded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Nodes expanded by algorithm",
		}, []string{"algorithm"}),
		SolutionCost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_cost",
			Help:      "Path cost of solutions found",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		FrontierPeak: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frontier_peak",
			Help:      "Largest frontier size per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// SearchStarted is a no-op; searches are counted when they finish.
func (c *Collector) SearchStarted(search.Algorithm) {}

// NodeExpanded increments the expansion counter.
func (c *Collector) NodeExpanded(alg search.Algorithm, _ int) {
	c.NodesExpanded.WithLabelValues(string(alg)).Inc()
}

// SearchFinished records the outcome, frontier peak and, on success, the cost.
func (c *Collector) SearchFinished(alg search.Algorithm, outcome search.Outcome, stats search.Stats, cost float64) {
	c.SearchesTotal.WithLabelValues(string(alg), string(outcome)).Inc()
	c.FrontierPeak.Observe(float64(stats.MaxFrontier))
	if outcome == search.OutcomeSuccess {
		c.SolutionCost.Observe(cost)
	}
}

// WriteText gathers g and writes every family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
