package repository

import (
	"context"
	"database/sql"
	"fmt"
	"mmr-matchmaker/internal/db"
	"mmr-matchmaker/internal/domain"
	"time"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// List returns all players, highest rating first, with their stored rank.
func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, domain.NewStoreError("list players", err)
	}

	result := make([]domain.Player, len(rows))
	for i, row := range rows {
		result[i] = toPlayer(row)
	}
	return result, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	row, err := r.queries.GetPlayerByName(ctx, name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}
	if err != nil {
		return nil, domain.NewStoreError("get player", err)
	}

	player := toPlayer(row)
	return &player, nil
}

func (r *PlayerRepository) Create(ctx context.Context, name string, rating int, rank *domain.RankTier) (*domain.Player, error) {
	now := time.Now().UTC()
	id, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		Name:      name,
		Rating:    int64(rating),
		RankID:    rankID(rank),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if _, dup := uniqueViolation(err); dup {
		return nil, fmt.Errorf("%w: player %s", domain.ErrDuplicateName, name)
	}
	if err != nil {
		return nil, domain.NewStoreError("create player", err)
	}

	r.logger.Debug().Int64("player_id", id).Str("name", name).Int("rating", rating).Msg("player created")

	return &domain.Player{
		ID:        id,
		Name:      name,
		Rating:    rating,
		Rank:      rank,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update writes name, rating and rank for an existing player.
func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	n, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		Name:      player.Name,
		Rating:    int64(player.Rating),
		RankID:    rankID(player.Rank),
		UpdatedAt: time.Now().UTC(),
		ID:        player.ID,
	})
	if _, dup := uniqueViolation(err); dup {
		return fmt.Errorf("%w: player %s", domain.ErrDuplicateName, player.Name)
	}
	if err != nil {
		return domain.NewStoreError("update player", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, player.ID)
	}
	return nil
}

func (r *PlayerRepository) DeleteByName(ctx context.Context, name string) (*domain.Player, error) {
	player, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	n, err := r.queries.DeletePlayerByID(ctx, player.ID)
	if err != nil {
		return nil, domain.NewStoreError("delete player", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, name)
	}
	return player, nil
}

func rankID(rank *domain.RankTier) sql.NullInt64 {
	if rank == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: rank.ID, Valid: true}
}

func toPlayer(row db.PlayerWithRank) domain.Player {
	player := domain.Player{
		ID:        row.ID,
		Name:      row.Name,
		Rating:    int(row.Rating),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.RankID.Valid && row.RankName.Valid {
		player.Rank = &domain.RankTier{
			ID:        row.RankID.Int64,
			Name:      row.RankName.String,
			MinRating: int(row.RankMinRating.Int64),
			CreatedAt: row.RankCreatedAt.Time,
			UpdatedAt: row.RankUpdatedAt.Time,
		}
	}
	return player
}
