package service

import (
	"context"
	"fmt"
	"mmr-matchmaker/internal/constants"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/repository"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type RankService struct {
	ranks  *repository.RankRepository
	logger zerolog.Logger
}

func NewRankService(ranks *repository.RankRepository, logger zerolog.Logger) *RankService {
	return &RankService{ranks: ranks, logger: logger}
}

func (s *RankService) List(ctx context.Context) ([]domain.RankTier, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.ranks.List(ctx)
}

func (s *RankService) Create(ctx context.Context, name string, minRating int) (*domain.RankTier, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if minRating < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRating, minRating)
	}

	// a shared threshold would make every later rank lookup ambiguous
	existing, err := s.ranks.List(ctx)
	if err != nil {
		return nil, err
	}
	if taken, ok := lo.Find(existing, func(r domain.RankTier) bool { return r.MinRating == minRating }); ok {
		return nil, fmt.Errorf("%w: %d is held by %s", domain.ErrDuplicateThreshold, minRating, taken.Name)
	}

	rank, err := s.ranks.Create(ctx, name, minRating)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create rank")
		return nil, err
	}

	s.logger.Info().Int64("rank_id", rank.ID).Str("name", name).Int("min_rating", minRating).Msg("rank created")
	return rank, nil
}

// DeleteByNames deletes the selected ranks. An empty selection is refused
// rather than treated as a no-op.
func (s *RankService) DeleteByNames(ctx context.Context, names []string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if len(names) == 0 {
		s.logger.Warn().Msg("rank delete requested with no selection")
		return domain.ErrEmptySelection
	}

	if err := s.ranks.DeleteByNames(ctx, names); err != nil {
		s.logger.Error().Err(err).Strs("names", names).Msg("failed to delete ranks")
		return err
	}

	s.logger.Info().Strs("names", names).Msg("ranks deleted")
	return nil
}
