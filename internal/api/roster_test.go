package api

import (
	"context"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/rpc"
	"mmr-matchmaker/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ matchmaking.RosterSource = (*RosterClient)(nil)

func newClient(t *testing.T, handler http.HandlerFunc) *RosterClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := testutil.TestConfig(t)
	cfg.RosterURL = ts.URL + "/"
	return NewRosterClient(cfg, testutil.Logger(t))
}

func TestRosterClientListsRemoteRoster(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body any
		switch r.URL.Path {
		case rpc.ListPlayersProcedure:
			body = rpc.ListPlayersResponse{Players: []rpc.Player{
				{ID: 1, Name: "GrokAI", Rating: 1200, Rank: "Mid"},
				{ID: 2, Name: "DragonSlayer", Rating: 100, Rank: domain.UnrankedName},
			}}
		case rpc.ListRanksProcedure:
			body = rpc.ListRanksResponse{Ranks: []rpc.Rank{{ID: 1, Name: "Low", MinRating: 0}, {ID: 2, Name: "Mid", MinRating: 1000}}}
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	})
	ctx := context.Background()

	players, err := client.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Mid", players[0].RankName())
	assert.Nil(t, players[1].Rank)

	ranks, err := client.ListRanks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankTier{{ID: 1, Name: "Low", MinRating: 0}, {ID: 2, Name: "Mid", MinRating: 1000}}, ranks)
}

func TestRosterClientRemoteErrorIsStoreError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"unavailable","message":"store list players: database is locked"}`))
	})

	_, err := client.ListPlayers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestRosterClientUnreachable(t *testing.T) {
	cfg := testutil.TestConfig(t)
	cfg.RosterURL = "http://127.0.0.1:1"
	client := NewRosterClient(cfg, testutil.Logger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.ListRanks(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
