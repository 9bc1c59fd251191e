package domain

import (
	"time"
)

const UnrankedName = "Unranked"

type Player struct {
	ID        int64
	Name      string
	Rating    int // MMR, never negative
	Rank      *RankTier
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RankName returns the tier name, or UnrankedName when the player has no tier.
func (p Player) RankName() string {
	if p.Rank == nil {
		return UnrankedName
	}
	return p.Rank.Name
}

type RankTier struct {
	ID        int64
	Name      string
	MinRating int // inclusive lower bound
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PlayerEdit struct {
	ID     int64
	Name   string
	Rating int
}
