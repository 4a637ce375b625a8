package devserver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pocketmesh_site"

// metrics holds the development server metrics.
type metrics struct {
	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	clients       prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Site builds by result.",
		}, []string{"result"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Site build duration.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reload_clients",
			Help:      "Browsers connected for live reload.",
		}),
	}
	reg.MustRegister(m.builds, m.buildDuration, m.clients)
	return m
}

func (m *metrics) observeBuild(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.builds.WithLabelValues(result).Inc()
	m.buildDuration.Observe(d.Seconds())
}
