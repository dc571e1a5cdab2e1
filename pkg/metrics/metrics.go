package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	TaskMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_mutation_count",
			Help: "Total number of task collection mutations",
		},
		[]string{"operation"}, // operation: add, add_many, update, delete, move_next_week
	)

	ImportRowCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_row_count",
			Help: "Total number of spreadsheet rows processed during import",
		},
		[]string{"outcome"}, // outcome: imported, skipped
	)

	NotificationScanCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_scan_count",
			Help: "Total number of notification scans",
		},
	)

	ActiveNotifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_notifications",
			Help: "Number of notifications derived by the latest scan",
		},
	)

	BlobWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blob_write_failures_total",
			Help: "Total number of failed task blob persistence writes",
		},
	)
)

// RecordHTTPRequestDuration records an HTTP request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementTaskMutation increments the mutation counter for an operation.
func IncrementTaskMutation(operation string) {
	TaskMutationCount.WithLabelValues(operation).Inc()
}

// IncrementImportRow increments the import row counter for an outcome.
func IncrementImportRow(outcome string) {
	ImportRowCount.WithLabelValues(outcome).Inc()
}
