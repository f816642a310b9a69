package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultError    = "error"
	ResultSkipped  = "skipped"
	ResultOverflow = "overflow"
)

// Metrics holds the Prometheus collectors for quote intake and notifications.
// All methods are safe on a nil receiver so callers may run without metrics.
type Metrics struct {
	QuotesSubmitted      *prometheus.CounterVec
	StatusChanges        *prometheus.CounterVec
	Notifications        *prometheus.CounterVec
	NotificationDuration prometheus.Histogram
	RateLimited          prometheus.Counter
}

var (
	globalMetrics *Metrics
	globalOnce    sync.Once
)

// New registers a fresh set of collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QuotesSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quotedesk_quotes_submitted_total",
			Help: "Quote submissions by outcome",
		}, []string{"result"}),

		StatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quotedesk_quote_status_changes_total",
			Help: "Quote status changes by target status",
		}, []string{"status"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quotedesk_notifications_total",
			Help: "Admin notification attempts by outcome",
		}, []string{"result"}),

		NotificationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "quotedesk_notification_duration_seconds",
			Help:    "Admin notification send latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),

		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "quotedesk_rate_limited_total",
			Help: "Requests rejected by the intake rate limiter",
		}),
	}
}

// InitMetrics registers the process-wide collectors on the default registry once.
func InitMetrics() *Metrics {
	globalOnce.Do(func() {
		globalMetrics = New(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) Submitted(result string) {
	if m == nil {
		return
	}
	m.QuotesSubmitted.WithLabelValues(result).Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.StatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) Notified(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
	if elapsed > 0 {
		m.NotificationDuration.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) Limited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
