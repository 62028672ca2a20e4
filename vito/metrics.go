package vito

import (
	"time"

	"github.com/gogpu/fresco/decoder"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "fresco"
	subsystem = "vito"
)

type metrics struct {
	Fetches      prometheus.Counter
	Successes    prometheus.Counter
	Failures     *prometheus.CounterVec
	Releases     prometheus.Counter
	FetchLatency prometheus.Histogram
}

func newMetrics() metrics {
	return metrics{
		Fetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fetches_total",
			Help:      "Total image fetches submitted.",
		}),
		Successes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "successes_total",
			Help:      "Total fetches that produced an image.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "failures_total",
			Help:      "Total failed fetches by outcome.",
		}, []string{"outcome"}),
		Releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "releases_total",
			Help:      "Total images released from drawables.",
		}),
		FetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fetch_duration_seconds",
			Help:      "Histogram of time from fetch submission to image display.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// MetricsPerfListener is an ImagePerfListener that exports Prometheus
// metrics.
type MetricsPerfListener struct {
	metrics metrics
}

var _ ImagePerfListener = (*MetricsPerfListener)(nil)

// NewMetricsPerfListener returns a listener with unregistered collectors;
// register the result of Metrics with a prometheus.Registerer.
func NewMetricsPerfListener() *MetricsPerfListener {
	return &MetricsPerfListener{metrics: newMetrics()}
}

func (l *MetricsPerfListener) OnImageFetch(FrescoDrawable) {
	l.metrics.Fetches.Inc()
}

func (l *MetricsPerfListener) OnImageSuccess(_ FrescoDrawable, elapsed time.Duration) {
	l.metrics.Successes.Inc()
	l.metrics.FetchLatency.Observe(elapsed.Seconds())
}

func (l *MetricsPerfListener) OnImageError(_ FrescoDrawable, err error) {
	l.metrics.Failures.WithLabelValues(decoder.Classify(err).String()).Inc()
}

func (l *MetricsPerfListener) OnImageRelease(FrescoDrawable) {
	l.metrics.Releases.Inc()
}

// Metrics returns the collectors to register.
func (l *MetricsPerfListener) Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		l.metrics.Fetches,
		l.metrics.Successes,
		l.metrics.Failures,
		l.metrics.Releases,
		l.metrics.FetchLatency,
	}
}
