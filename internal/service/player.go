package service

import (
	"context"
	"fmt"
	"mmr-matchmaker/internal/constants"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/repository"
	"strings"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	players *repository.PlayerRepository
	ranks   *repository.RankRepository
	logger  zerolog.Logger
}

func NewPlayerService(players *repository.PlayerRepository, ranks *repository.RankRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{players: players, ranks: ranks, logger: logger}
}

func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	players, err := s.players.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list players")
		return nil, err
	}
	return players, nil
}

// Create stores a new player with the tier its rating resolves to. A rating
// below every tier is stored as unranked.
func (s *PlayerService) Create(ctx context.Context, name string, rating int) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := validatePlayer(name, rating); err != nil {
		return nil, err
	}

	rank, err := s.resolve(ctx, rating)
	if err != nil {
		return nil, err
	}

	player, err := s.players.Create(ctx, name, rating, rank)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create player")
		return nil, err
	}

	s.logger.Info().Int64("player_id", player.ID).Str("name", name).Str("rank", player.RankName()).Msg("player created")
	return player, nil
}

// Update applies name and rating edits, re-deriving each player's rank. It
// stops at the first failing edit; earlier edits stay applied.
func (s *PlayerService) Update(ctx context.Context, edits []domain.PlayerEdit) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if len(edits) == 0 {
		return nil, domain.ErrEmptySelection
	}

	tiers, err := s.ranks.List(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.Player, 0, len(edits))
	for _, edit := range edits {
		name := strings.TrimSpace(edit.Name)
		if err := validatePlayer(name, edit.Rating); err != nil {
			return updated, fmt.Errorf("player %d: %w", edit.ID, err)
		}

		rank, err := matchmaking.ResolveRank(edit.Rating, tiers)
		if err != nil {
			return updated, err
		}

		player := domain.Player{ID: edit.ID, Name: name, Rating: edit.Rating, Rank: rank}
		if err := s.players.Update(ctx, &player); err != nil {
			s.logger.Error().Err(err).Int64("player_id", edit.ID).Msg("failed to update player")
			return updated, err
		}
		updated = append(updated, player)
	}

	s.logger.Info().Int("count", len(updated)).Msg("players updated")
	return updated, nil
}

// DeleteByNames removes the selected players in order, stopping at the first
// one that cannot be removed.
func (s *PlayerService) DeleteByNames(ctx context.Context, names []string) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if len(names) == 0 {
		return nil, domain.ErrEmptySelection
	}

	deleted := make([]domain.Player, 0, len(names))
	for _, name := range names {
		player, err := s.players.DeleteByName(ctx, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("failed to delete player")
			return deleted, err
		}
		deleted = append(deleted, *player)
	}

	s.logger.Info().Strs("names", names).Msg("players deleted")
	return deleted, nil
}

func (s *PlayerService) resolve(ctx context.Context, rating int) (*domain.RankTier, error) {
	tiers, err := s.ranks.List(ctx)
	if err != nil {
		return nil, err
	}
	return matchmaking.ResolveRank(rating, tiers)
}

func validatePlayer(name string, rating int) error {
	if name == "" {
		return domain.ErrInvalidName
	}
	if rating < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidRating, rating)
	}
	return nil
}
