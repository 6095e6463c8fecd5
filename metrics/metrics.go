// SPDX-License-Identifier: MIT

// Package metrics records spline build stages as Prometheus metrics.
//
// A Recorder implements spline.Observer and owns its registry, so several
// recorders never collide. A CLI run can dump the registry to a node
// exporter textfile with WriteTextfile.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvspline/matrix"
	"github.com/katalvlaran/lvspline/spline"
	"github.com/katalvlaran/lvspline/target"
)

const (
	namespace = "lvspline"
	subsystem = "spline"
)

// Status label values.
const (
	StatusOK                 = "ok"
	StatusNotDominant        = "not_dominant"
	StatusSingular           = "singular"
	StatusNumericInstability = "numeric_instability"
	StatusDegenerateSampling = "degenerate_sampling"
	StatusInvalidOption      = "invalid_option"
	StatusEvaluation         = "evaluation"
	StatusError              = "error"
)

// Recorder collects per-stage counters and latencies.
//
// Thread Safety: safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	stages    *prometheus.CounterVec
	durations *prometheus.HistogramVec
	nodes     prometheus.Gauge
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		// stages counts finished stages.
		// Labels: stage, status (ok or a failure class)
		stages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stages_total",
			Help:      "Finished spline build stages by outcome",
		}, []string{"stage", "status"}),
		durations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of spline build stages in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"stage"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_build_nodes",
			Help:      "Node count of the most recent successful build",
		}),
	}
}

// Observe implements spline.Observer.
func (r *Recorder) Observe(e spline.Event) {
	stage := string(e.Stage)
	r.stages.WithLabelValues(stage, Status(e.Err)).Inc()
	r.durations.WithLabelValues(stage).Observe(e.Duration.Seconds())
	if e.Stage == spline.StageBuild && e.Err == nil {
		r.nodes.Set(float64(e.Nodes))
	}
}

// Registry exposes the registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes the current metrics in the text exposition format,
// atomically replacing path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Status classifies err into a status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, matrix.ErrNotDiagonallyDominant):
		return StatusNotDominant
	case errors.Is(err, matrix.ErrSingular):
		return StatusSingular
	case errors.Is(err, matrix.ErrNumericInstability), errors.Is(err, spline.ErrNumericInstability),
		errors.Is(err, matrix.ErrNaNInf):
		return StatusNumericInstability
	case errors.Is(err, spline.ErrDegenerateSampling):
		return StatusDegenerateSampling
	case errors.Is(err, spline.ErrOptionViolation), errors.Is(err, spline.ErrUnsupportedBoundary):
		return StatusInvalidOption
	case errors.Is(err, target.ErrEvaluation), errors.Is(err, target.ErrNotNumeric):
		return StatusEvaluation
	default:
		return StatusError
	}
}
