package matchmaking

import (
	"context"
	"mmr-matchmaker/internal/domain"
)

// RosterSource is the read side of the player/rank store. Failures come back as
// *domain.StoreError and are handed to callers unchanged.
type RosterSource interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	ListRanks(ctx context.Context) ([]domain.RankTier, error)
}
