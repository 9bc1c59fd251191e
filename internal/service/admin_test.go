package service

import (
	"context"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServices(t *testing.T) (*PlayerService, *RankService) {
	t.Helper()
	repos := testutil.SetupRepos(t)
	logger := testutil.Logger(t)
	return NewPlayerService(repos.Players, repos.Ranks, logger), NewRankService(repos.Ranks, logger)
}

func seedLadder(t *testing.T, ranks *RankService) {
	t.Helper()
	for _, r := range ladder {
		_, err := ranks.Create(context.Background(), r.Name, r.MinRating)
		require.NoError(t, err)
	}
}

func TestPlayerCreateResolvesRank(t *testing.T) {
	players, ranks := newAdminServices(t)
	ctx := context.Background()

	created, err := players.Create(ctx, "  GrokAI ", 1200)
	require.NoError(t, err)
	assert.Equal(t, "GrokAI", created.Name)
	assert.Equal(t, domain.UnrankedName, created.RankName(), "no tiers yet")

	seedLadder(t, ranks)

	created, err = players.Create(ctx, "ShadowKill", 2000)
	require.NoError(t, err)
	assert.Equal(t, "High", created.RankName())

	list, err := players.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ShadowKill", list[0].Name)
}

func TestPlayerCreateValidation(t *testing.T) {
	players, _ := newAdminServices(t)
	ctx := context.Background()

	_, err := players.Create(ctx, "   ", 100)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = players.Create(ctx, "neg", -10)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestPlayerUpdateReResolvesRank(t *testing.T) {
	players, ranks := newAdminServices(t)
	ctx := context.Background()
	seedLadder(t, ranks)

	p, err := players.Create(ctx, "DragonSlayer", 100)
	require.NoError(t, err)
	assert.Equal(t, "Low", p.RankName())

	updated, err := players.Update(ctx, []domain.PlayerEdit{{ID: p.ID, Name: "Dragon", Rating: 1500}})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Mid", updated[0].RankName())

	list, err := players.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dragon", list[0].Name)
	assert.Equal(t, "Mid", list[0].RankName())

	_, err = players.Update(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	_, err = players.Update(ctx, []domain.PlayerEdit{{ID: p.ID, Name: "Dragon", Rating: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestPlayerDeleteByNames(t *testing.T) {
	players, _ := newAdminServices(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := players.Create(ctx, name, 10)
		require.NoError(t, err)
	}

	_, err := players.DeleteByNames(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	deleted, err := players.DeleteByNames(ctx, []string{"a", "missing", "c"})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	require.Len(t, deleted, 1, "processing stops at the first failure")
	assert.Equal(t, "a", deleted[0].Name)

	list, err := players.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRankDeleteRequiresSelection(t *testing.T) {
	_, ranks := newAdminServices(t)
	ctx := context.Background()
	seedLadder(t, ranks)

	err := ranks.DeleteByNames(ctx, []string{})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)

	list, err := ranks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3, "empty selection deletes nothing")

	require.NoError(t, ranks.DeleteByNames(ctx, []string{"Mid"}))
	list, err = ranks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRankCreateValidation(t *testing.T) {
	_, ranks := newAdminServices(t)
	ctx := context.Background()

	_, err := ranks.Create(ctx, "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = ranks.Create(ctx, "Sub", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestRankCreateRejectsTakenThreshold(t *testing.T) {
	players, ranks := newAdminServices(t)
	ctx := context.Background()
	seedLadder(t, ranks)

	_, err := ranks.Create(ctx, "Copper", 1000)
	assert.ErrorIs(t, err, domain.ErrDuplicateThreshold)
	assert.ErrorContains(t, err, "Mid")

	list, err := ranks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	// lookups stay unambiguous, so player writes keep working
	created, err := players.Create(ctx, "New", 5)
	require.NoError(t, err)
	assert.Equal(t, "Low", created.RankName())
}
