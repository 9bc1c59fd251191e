package matchmaking

import (
	"math/rand/v2"
	"mmr-matchmaker/internal/domain"
	"slices"
	"sync"
)

// Sampler draws bounded subsets of a pool. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler builds a sampler over src. A nil src uses a generator seeded from
// runtime entropy.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler is a deterministic sampler, mainly for tests and replays.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed))
}

// Sample returns min(k, len(pool)) distinct players drawn uniformly without
// replacement. short reports that the pool held fewer than k players, in which
// case the whole pool is returned. The input slice is never reordered.
func (s *Sampler) Sample(pool []domain.Player, k int) (sample []domain.Player, short bool) {
	if k < 0 {
		k = 0
	}
	if len(pool) <= k {
		return slices.Clone(pool), len(pool) < k
	}

	picked := slices.Clone(pool)

	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	s.mu.Unlock()

	return picked[:k:k], false
}
