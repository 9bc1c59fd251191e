package testutil

import (
	"context"
	"database/sql"
	"mmr-matchmaker/internal/config"
	"mmr-matchmaker/internal/database"
	"mmr-matchmaker/internal/db"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/repository"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Logger writes through t.Log so output only shows for failing tests.
func Logger(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// TestConfig is a valid configuration backed by a sqlite file in a temp dir.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:        config.DriverSQLite,
		DBPath:          filepath.Join(t.TempDir(), "matchmaker_test.db"),
		ServerPort:      "0",
		LogLevel:        zerolog.DebugLevel,
		NATSSubject:     "match.found",
		DefaultTeamSize: 5,
		MaxTeamSize:     10,
	}
}

// SetupTestDB opens a migrated sqlite database that is closed with the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := database.New(TestConfig(t), Logger(t))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

type Repos struct {
	DB      *sql.DB
	Players *repository.PlayerRepository
	Ranks   *repository.RankRepository
}

func SetupRepos(t *testing.T) Repos {
	t.Helper()

	sqlDB := SetupTestDB(t)
	queries := db.New(sqlDB)
	logger := Logger(t)
	return Repos{
		DB:      sqlDB,
		Players: repository.NewPlayerRepository(sqlDB, queries, logger),
		Ranks:   repository.NewRankRepository(sqlDB, queries, logger),
	}
}

// SeedRanks creates the Low/Mid/High ladder used across tests.
func SeedRanks(t *testing.T, ranks *repository.RankRepository) []domain.RankTier {
	t.Helper()

	ctx := context.Background()
	var tiers []domain.RankTier
	for _, r := range []struct {
		name string
		min  int
	}{{"Low", 0}, {"Mid", 1000}, {"High", 2000}} {
		tier, err := ranks.Create(ctx, r.name, r.min)
		require.NoError(t, err)
		tiers = append(tiers, *tier)
	}
	return tiers
}
