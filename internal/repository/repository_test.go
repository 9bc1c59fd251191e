package repository_test

import (
	"context"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/repository"
	"mmr-matchmaker/internal/testutil"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRepositoryCreateAndList(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()

	_, err := repos.Ranks.Create(ctx, "High", 2000)
	require.NoError(t, err)
	_, err = repos.Ranks.Create(ctx, "Low", 0)
	require.NoError(t, err)

	ranks, err := repos.Ranks.List(ctx)
	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, "Low", ranks[0].Name)
	assert.Equal(t, "High", ranks[1].Name)
	assert.False(t, ranks[0].CreatedAt.IsZero())
}

func TestRankRepositoryDuplicates(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()

	_, err := repos.Ranks.Create(ctx, "Gold", 1500)
	require.NoError(t, err)

	_, err = repos.Ranks.Create(ctx, "Gold", 1700)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable, "a constraint violation is not retryable")

	_, err = repos.Ranks.Create(ctx, "Copper", 1500)
	assert.ErrorIs(t, err, domain.ErrDuplicateThreshold)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	ranks, err := repos.Ranks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
}

func TestPlayerRepositoryDuplicateName(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()

	_, err := repos.Players.Create(ctx, "GrokAI", 1200, nil)
	require.NoError(t, err)
	other, err := repos.Players.Create(ctx, "ShadowKill", 700, nil)
	require.NoError(t, err)

	_, err = repos.Players.Create(ctx, "GrokAI", 900, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	other.Name = "GrokAI"
	err = repos.Players.Update(ctx, other)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestRankRepositoryDeleteByNames(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()
	testutil.SeedRanks(t, repos.Ranks)

	err := repos.Ranks.DeleteByNames(ctx, []string{"Low", "Nope"})
	assert.ErrorIs(t, err, domain.ErrRankNotFound)

	ranks, err := repos.Ranks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ranks, 3, "failed batch must roll back")

	require.NoError(t, repos.Ranks.DeleteByNames(ctx, []string{"Low", "High"}))
	ranks, err = repos.Ranks.List(ctx)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	assert.Equal(t, "Mid", ranks[0].Name)
}

func TestPlayerRepositoryLifecycle(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()
	tiers := testutil.SeedRanks(t, repos.Ranks)

	created, err := repos.Players.Create(ctx, "DragonSlayer", 100, &tiers[0])
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = repos.Players.Create(ctx, "GrokAI", 1200, &tiers[1])
	require.NoError(t, err)
	_, err = repos.Players.Create(ctx, "Nobody", 700, nil)
	require.NoError(t, err)

	players, err := repos.Players.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1200, 700, 100}, lo.Map(players, func(p domain.Player, _ int) int { return p.Rating }))
	assert.Equal(t, "Mid", players[0].RankName())
	assert.Equal(t, domain.UnrankedName, players[1].RankName())
	assert.Equal(t, "Low", players[2].RankName())

	got, err := repos.Players.GetByName(ctx, "DragonSlayer")
	require.NoError(t, err)
	got.Rating = 2300
	got.Rank = &tiers[2]
	require.NoError(t, repos.Players.Update(ctx, got))

	got, err = repos.Players.GetByName(ctx, "DragonSlayer")
	require.NoError(t, err)
	assert.Equal(t, 2300, got.Rating)
	assert.Equal(t, "High", got.RankName())

	deleted, err := repos.Players.DeleteByName(ctx, "DragonSlayer")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repos.Players.DeleteByName(ctx, "DragonSlayer")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	err = repos.Players.Update(ctx, &domain.Player{ID: 9999, Name: "ghost"})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestDeletingRankLeavesPlayersUnranked(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()
	tiers := testutil.SeedRanks(t, repos.Ranks)

	_, err := repos.Players.Create(ctx, "ShadowKill", 1500, &tiers[1])
	require.NoError(t, err)
	require.NoError(t, repos.Ranks.DeleteByNames(ctx, []string{"Mid"}))

	got, err := repos.Players.GetByName(ctx, "ShadowKill")
	require.NoError(t, err)
	assert.Nil(t, got.Rank)
}

func TestRosterReadsBothTables(t *testing.T) {
	repos := testutil.SetupRepos(t)
	ctx := context.Background()
	testutil.SeedRanks(t, repos.Ranks)
	_, err := repos.Players.Create(ctx, "solo", 10, nil)
	require.NoError(t, err)

	roster := repository.NewRoster(repos.Players, repos.Ranks)
	players, err := roster.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	ranks, err := roster.ListRanks(ctx)
	require.NoError(t, err)
	assert.Len(t, ranks, 3)
}

func TestClosedDatabaseIsStoreUnavailable(t *testing.T) {
	repos := testutil.SetupRepos(t)
	require.NoError(t, repos.DB.Close())

	_, err := repos.Players.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = repos.Ranks.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
