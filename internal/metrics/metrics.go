// Package metrics holds the Prometheus collectors for pairwise distance computation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mode labels.
const (
	ModeSymmetric  = "symmetric"
	ModeAsymmetric = "asymmetric"
)

// Status labels.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

var (
	// ComputeTotal counts Compute calls by mode and outcome
	ComputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "umap_pairwise_compute_total",
			Help: "Total number of pairwise distance matrix computations",
		},
		[]string{"mode", "status"},
	)

	// ComputeDurationSeconds measures wall time of successful Compute calls
	ComputeDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "umap_pairwise_compute_duration_seconds",
			Help:    "Duration of pairwise distance matrix computations",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		},
		[]string{"mode"},
	)

	// MetricEvaluationsTotal counts calls into the distance metric
	MetricEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "umap_pairwise_metric_evaluations_total",
			Help: "Total number of distance metric evaluations",
		},
		[]string{"mode"},
	)

	// BlocksTotal counts row blocks that ran to completion
	BlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "umap_pairwise_blocks_total",
			Help: "Total number of row blocks processed",
		},
		[]string{"mode"},
	)
)

// Mode returns the mode label for a computation.
func Mode(symmetric bool) string {
	if symmetric {
		return ModeSymmetric
	}
	return ModeAsymmetric
}
