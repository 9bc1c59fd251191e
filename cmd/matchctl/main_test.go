package main

import (
	"bytes"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/metrics"
	"mmr-matchmaker/internal/pubsub"
	"mmr-matchmaker/internal/repository"
	"mmr-matchmaker/internal/server"
	"mmr-matchmaker/internal/service"
	"mmr-matchmaker/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	t.Helper()
	repos := testutil.SetupRepos(t)
	logger := testutil.Logger(t)

	mmServer := server.NewMatchmakingServer(
		service.NewMatchService(
			repository.NewRoster(repos.Players, repos.Ranks),
			matchmaking.NewEngine(matchmaking.NewSeededSampler(5)),
			pubsub.NopPublisher{},
			metrics.New(),
			testutil.TestConfig(t),
			logger,
		),
		service.NewPlayerService(repos.Players, repos.Ranks, logger),
		service.NewRankService(repos.Ranks, logger),
	)

	mux := http.NewServeMux()
	mux.Handle(mmServer.Handler())
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", url}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestMatchctlEndToEnd(t *testing.T) {
	url := startServer(t)

	for _, args := range [][]string{
		{"ranks", "add", "Low", "0"},
		{"ranks", "add", "Mid", "1000"},
		{"players", "add", "DragonSlayer", "100"},
		{"players", "add", "ShadowKill", "700"},
		{"players", "add", "GrokAI", "1200"},
	} {
		_, err := run(t, url, args...)
		require.NoError(t, err, args)
	}

	out, err := run(t, url, "players", "list")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)GrokAI.*Mid.*ShadowKill.*Low.*DragonSlayer`, out)

	out, err = run(t, url, "match", "--team-size", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "only 3 players available, wanted 4")
	assert.Contains(t, out, "Team Red  total=1200  average=1200")
	assert.Contains(t, out, "Team Blue  total=800  average=400")
	assert.Contains(t, out, "rating gap: 400")

	out, err = run(t, url, "ranks", "rm", "Mid")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted Mid")
}

func TestMatchctlSurfacesServerErrors(t *testing.T) {
	url := startServer(t)

	_, err := run(t, url, "match", "--range", "high")
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = run(t, url, "players", "rm", "ghost")
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = run(t, url, "players", "add", "x", "lots")
	assert.ErrorContains(t, err, "invalid rating")
}

func TestFormatAverage(t *testing.T) {
	avg := func(v float64) *float64 { return &v }

	assert.Equal(t, "-", formatAverage(nil))
	assert.Equal(t, "400", formatAverage(avg(400)))
	assert.Equal(t, "1234.5", formatAverage(avg(1234.5)))
	assert.Equal(t, "333.33", formatAverage(avg(1000.0/3)))
}
