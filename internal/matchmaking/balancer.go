package matchmaking

import (
	"cmp"
	"mmr-matchmaker/internal/domain"
	"slices"
)

type Teams struct {
	A []domain.Player
	B []domain.Player
}

// Balance splits players into two teams in a single greedy pass: highest rating
// first, each player joining whichever team has the lower running total. Team A
// wins ties. Players of equal rating keep their input order.
func Balance(players []domain.Player) Teams {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b domain.Player) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	teams := Teams{
		A: make([]domain.Player, 0, (len(sorted)+1)/2),
		B: make([]domain.Player, 0, len(sorted)/2),
	}

	var sumA, sumB int
	for _, p := range sorted {
		if sumA <= sumB {
			teams.A = append(teams.A, p)
			sumA += p.Rating
		} else {
			teams.B = append(teams.B, p)
			sumB += p.Rating
		}
	}

	return teams
}
