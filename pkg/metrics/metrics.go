package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vit0-9/redirect_detector/pkg/detector"
)

// PrometheusMetrics holds the collectors for redirect resolutions.
type PrometheusMetrics struct {
	Detections        *prometheus.CounterVec
	DetectionDuration *prometheus.HistogramVec
	Hops              prometheus.Histogram
	BodyBytes         prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on reg. Pass a fresh prometheus.Registry
// in tests to avoid duplicate registration.
func NewMetrics(reg *prometheus.Registry) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		Detections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redirect_detections_total",
				Help: "Total number of redirect resolutions by outcome",
			},
			[]string{"outcome"},
		), // label: "ok" or an error code
		DetectionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "redirect_detection_duration_seconds",
				Help:    "Time taken to resolve a redirect chain",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		Hops: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "redirect_hops",
				Help:    "Number of fetches needed to reach the final URL",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
		BodyBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "redirect_body_bytes_total",
				Help: "Total number of terminal response body bytes drained",
			},
		),
		gatherer: reg,
	}
}

// Observe records one finished resolution.
func (m *PrometheusMetrics) Observe(res *detector.Result, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = detector.CodeOf(err)
	}
	m.Detections.WithLabelValues(outcome).Inc()
	m.DetectionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	if res != nil {
		m.Hops.Observe(float64(len(res.Hops)))
		m.BodyBytes.Add(float64(res.BodyBytes))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
