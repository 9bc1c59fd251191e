package metrics

import (
	"io"
	"mmr-matchmaker/internal/matchmaking"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMatch(t *testing.T) {
	m := New()

	m.ObserveMatch(&matchmaking.Result{Available: 10, Report: matchmaking.Report{Gap: 40}})
	m.ObserveMatch(&matchmaking.Result{
		Available:  3,
		Advisories: []matchmaking.Advisory{matchmaking.AdvisoryInsufficientPool},
	})
	m.ObserveFailure(OutcomeEmptyPool)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues(OutcomeBalanced)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues(OutcomeInsufficient)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues(OutcomeEmptyPool)))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var gapSamples uint64
	for _, mf := range families {
		if mf.GetName() == "matchmaker_match_rating_gap" {
			gapSamples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), gapSamples, "failures must not record a gap")
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveFailure(OutcomeError)
	m.ObserveRequest("/metrics", 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `matchmaker_matches_total{outcome="error"} 1`)
	assert.Contains(t, string(body), "matchmaker_request_duration_seconds")
}
