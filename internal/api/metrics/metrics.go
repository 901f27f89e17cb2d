// Package metrics defines the custom Prometheus metrics for the dental
// diagnostics API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dental"

// ImagesProcessedTotal counts image operations that completed successfully.
// Label:
//   - operation: "enhance", "colorize", "cavities", "missing_teeth",
//     "analyze" or "xray"
var ImagesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_processed_total",
		Help:      "Total number of images processed successfully, by operation.",
	},
	[]string{"operation"},
)

// ProcessingErrorsTotal counts image operations that failed.
var ProcessingErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "processing_errors_total",
		Help:      "Total number of failed image operations, by operation.",
	},
	[]string{"operation"},
)

// ProcessingDuration measures end-to-end duration of a single image
// operation, from saved upload to encoded response.
var ProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "processing_duration_seconds",
		Help:      "Duration of image processing per operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// DetectionsTotal counts individual findings reported to clients.
// Label:
//   - type: "cavity", "missing_tooth" or "condition"
var DetectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_total",
		Help:      "Total number of findings returned, by finding type.",
	},
	[]string{"type"},
)

// AuthAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
