package matchmaking

import (
	"cmp"
	"mmr-matchmaker/internal/domain"
	"slices"
)

// ResolveRank returns the tier with the greatest MinRating not above rating,
// or nil when rating sits below every threshold. Tiers sharing a MinRating make
// the lookup ambiguous and are reported as an *domain.IntegrityError.
func ResolveRank(rating int, tiers []domain.RankTier) (*domain.RankTier, error) {
	if err := CheckTiers(tiers); err != nil {
		return nil, err
	}
	return resolveChecked(rating, tiers), nil
}

// resolveChecked is ResolveRank for tiers already vetted by CheckTiers.
func resolveChecked(rating int, tiers []domain.RankTier) *domain.RankTier {
	var best *domain.RankTier
	for i := range tiers {
		t := &tiers[i]
		if t.MinRating > rating {
			continue
		}
		if best == nil || t.MinRating > best.MinRating {
			best = t
		}
	}
	if best == nil {
		return nil
	}

	resolved := *best
	return &resolved
}

// CheckTiers reports the first min_rating shared by more than one tier.
func CheckTiers(tiers []domain.RankTier) error {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b domain.RankTier) int {
		return cmp.Compare(a.MinRating, b.MinRating)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinRating != sorted[i-1].MinRating {
			continue
		}
		dup := &domain.IntegrityError{MinRating: sorted[i].MinRating, Tiers: []string{sorted[i-1].Name}}
		for j := i; j < len(sorted) && sorted[j].MinRating == dup.MinRating; j++ {
			dup.Tiers = append(dup.Tiers, sorted[j].Name)
		}
		return dup
	}
	return nil
}
