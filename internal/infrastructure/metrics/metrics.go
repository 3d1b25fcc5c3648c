package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes used as the status label.
const (
	StatusSuccess    = "success"
	StatusIdempotent = "idempotent"
	StatusRejected   = "rejected"
	StatusError      = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_core_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_core_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_core_operations_total",
			Help: "Outcomes of order, sample and consistency operations",
		},
		[]string{"operation", "status"},
	)

	stockShortages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_core_stock_shortages_total",
			Help: "Shortfall lines reported by rejected conversions",
		},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_core_notifications_total",
			Help: "Post-commit notifications by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	consistencyIssues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "order_core_consistency_issues",
			Help: "Issues found by the last run of each consistency check",
		},
		[]string{"check"},
	)
)

func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	httpRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func RecordOperation(operation, status string) {
	operations.WithLabelValues(operation, status).Inc()
}

func RecordStockShortages(lines int) {
	if lines > 0 {
		stockShortages.Add(float64(lines))
	}
}

func RecordNotification(kind string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	notifications.WithLabelValues(kind, status).Inc()
}

func SetConsistencyIssues(check string, count int) {
	consistencyIssues.WithLabelValues(check).Set(float64(count))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
