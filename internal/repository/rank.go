package repository

import (
	"context"
	"database/sql"
	"fmt"
	"mmr-matchmaker/internal/db"
	"mmr-matchmaker/internal/domain"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type RankRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRankRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RankRepository {
	return &RankRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *RankRepository) List(ctx context.Context) ([]domain.RankTier, error) {
	rows, err := r.queries.ListRanks(ctx)
	if err != nil {
		return nil, domain.NewStoreError("list ranks", err)
	}

	result := make([]domain.RankTier, len(rows))
	for i, row := range rows {
		result[i] = toRankTier(row)
	}
	return result, nil
}

func (r *RankRepository) GetByName(ctx context.Context, name string) (*domain.RankTier, error) {
	row, err := r.queries.GetRankByName(ctx, name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", domain.ErrRankNotFound, name)
	}
	if err != nil {
		return nil, domain.NewStoreError("get rank", err)
	}

	rank := toRankTier(row)
	return &rank, nil
}

func (r *RankRepository) Create(ctx context.Context, name string, minRating int) (*domain.RankTier, error) {
	now := time.Now().UTC()
	row, err := r.queries.CreateRank(ctx, db.CreateRankParams{
		Name:      name,
		MinRating: int64(minRating),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if constraint, dup := uniqueViolation(err); dup {
		if strings.Contains(constraint, "min_rating") {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateThreshold, minRating)
		}
		return nil, fmt.Errorf("%w: rank %s", domain.ErrDuplicateName, name)
	}
	if err != nil {
		return nil, domain.NewStoreError("create rank", err)
	}

	rank := toRankTier(row)
	r.logger.Debug().Int64("rank_id", rank.ID).Str("name", rank.Name).Int("min_rating", rank.MinRating).Msg("rank created")
	return &rank, nil
}

// DeleteByNames removes every named rank in one transaction. An unknown name
// rolls the whole batch back.
func (r *RankRepository) DeleteByNames(ctx context.Context, names []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for _, name := range names {
		n, err := qtx.DeleteRankByName(ctx, name)
		if err != nil {
			return domain.NewStoreError("delete rank", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrRankNotFound, name)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStoreError("commit transaction", err)
	}
	return nil
}

func toRankTier(row db.Rank) domain.RankTier {
	return domain.RankTier{
		ID:        row.ID,
		Name:      row.Name,
		MinRating: int(row.MinRating),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
