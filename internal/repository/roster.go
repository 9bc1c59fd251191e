package repository

import (
	"context"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/matchmaking"
)

// Roster serves matchmaking from the local database.
type Roster struct {
	players *PlayerRepository
	ranks   *RankRepository
}

var _ matchmaking.RosterSource = (*Roster)(nil)

func NewRoster(players *PlayerRepository, ranks *RankRepository) *Roster {
	return &Roster{players: players, ranks: ranks}
}

func (r *Roster) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return r.players.List(ctx)
}

func (r *Roster) ListRanks(ctx context.Context) ([]domain.RankTier, error) {
	return r.ranks.List(ctx)
}
