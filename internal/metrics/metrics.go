package metrics

import (
	"mmr-matchmaker/internal/matchmaking"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "matchmaker"

// Match outcomes.
const (
	OutcomeBalanced     = "balanced"
	OutcomeInsufficient = "insufficient_pool"
	OutcomeEmptyPool    = "empty_pool"
	OutcomeError        = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	matches         *prometheus.CounterVec
	gap             prometheus.Histogram
	poolSize        prometheus.Histogram
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Matchmaking runs by outcome.",
		}, []string{"outcome"}),
		gap: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_rating_gap",
			Help:      "Absolute difference of team rating totals.",
			Buckets:   []float64{0, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		poolSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_pool_size",
			Help:      "Players available after filtering.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.matches,
		m.gap,
		m.poolSize,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveMatch(result *matchmaking.Result) {
	outcome := OutcomeBalanced
	if result.Has(matchmaking.AdvisoryInsufficientPool) {
		outcome = OutcomeInsufficient
	}
	m.matches.WithLabelValues(outcome).Inc()
	m.gap.Observe(float64(result.Report.Gap))
	m.poolSize.Observe(float64(result.Available))
}

func (m *Metrics) ObserveFailure(outcome string) {
	m.matches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(path string, seconds float64) {
	m.requestDuration.WithLabelValues(path).Observe(seconds)
}

var Module = fx.Provide(New)
