// SPDX-License-Identifier: MIT

// Package metrics exports MST solver progress as Prometheus metrics.
//
// A Collector implements prim_kruskal.Observer; install it with
// prim_kruskal.WithObserver. It is safe for concurrent use, so a single
// Collector can watch every solver of a runner.Run.
package metrics

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const namespace = "lvmst"

// Collector counts edges examined by each solver and times every solve.
// All series carry a "solver" label holding the method name.
type Collector struct {
	considered   *prometheus.CounterVec
	accepted     *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	solveSeconds *prometheus.HistogramVec
	treeCost     *prometheus.GaugeVec
	treeEdges    *prometheus.GaugeVec
}

// NewCollector creates the metric vectors and registers them on reg.
// A nil reg leaves them unregistered (useful in tests).
// Registering two Collectors on the same Registerer panics, as with promauto.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	labels := []string{"solver"}

	return &Collector{
		considered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_considered_total",
			Help:      "Edges examined by a solver, accepted or rejected.",
		}, labels),
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_accepted_total",
			Help:      "Edges added to a solver's output network.",
		}, labels),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_rejected_total",
			Help:      "Edges discarded because they would close a cycle.",
		}, labels),
		solveSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_seconds",
			Help:      "Wall time of one solver run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, labels),
		treeCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_cost",
			Help:      "Total cost of the last output network.",
		}, labels),
		treeEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_edges",
			Help:      "Edge count of the last output network.",
		}, labels),
	}
}

// Accepted records an edge taken into the output.
func (c *Collector) Accepted(method string, _ core.Edge) {
	c.considered.WithLabelValues(method).Inc()
	c.accepted.WithLabelValues(method).Inc()
}

// Rejected records an edge dropped as cycle-forming.
func (c *Collector) Rejected(method string, _ core.Edge) {
	c.considered.WithLabelValues(method).Inc()
	c.rejected.WithLabelValues(method).Inc()
}

// Finished records the solve duration and the shape of the result.
func (c *Collector) Finished(method string, out *core.Network, took time.Duration) {
	c.solveSeconds.WithLabelValues(method).Observe(took.Seconds())
	c.treeCost.WithLabelValues(method).Set(float64(out.TotalCost()))
	c.treeEdges.WithLabelValues(method).Set(float64(out.EdgeCount()))
}

// Encode writes every metric family gathered from g to w in the Prometheus
// text exposition format.
func Encode(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes the metrics gathered from g to path, suitable for the
// node_exporter textfile collector. A path of "-" writes to stdout instead.
func WriteFile(path string, stdout io.Writer, g prometheus.Gatherer) error {
	if path == "-" {
		return Encode(stdout, g)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
