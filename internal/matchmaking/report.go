package matchmaking

import (
	"mmr-matchmaker/internal/domain"

	"github.com/samber/lo"
)

const (
	TeamAName = "Team Red"
	TeamBName = "Team Blue"
)

type TeamStats struct {
	Name    string
	Players []domain.Player
	Total   int
	Size    int
	// nil when the team has no players
	Average *float64
}

type Report struct {
	A   TeamStats
	B   TeamStats
	Gap int
}

func Summarize(teams Teams) Report {
	a := teamStats(TeamAName, teams.A)
	b := teamStats(TeamBName, teams.B)

	gap := a.Total - b.Total
	if gap < 0 {
		gap = -gap
	}

	return Report{A: a, B: b, Gap: gap}
}

func teamStats(name string, players []domain.Player) TeamStats {
	stats := TeamStats{
		Name:    name,
		Players: players,
		Size:    len(players),
		Total: lo.SumBy(players, func(p domain.Player) int {
			return p.Rating
		}),
	}
	if stats.Size > 0 {
		avg := float64(stats.Total) / float64(stats.Size)
		stats.Average = &avg
	}
	return stats
}
