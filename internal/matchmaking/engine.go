package matchmaking

import (
	"fmt"
	"math"
	"mmr-matchmaker/internal/domain"

	"github.com/samber/lo"
)

type Advisory string

// AdvisoryInsufficientPool: fewer than 2*TeamSize players matched, the whole pool was used.
const AdvisoryInsufficientPool Advisory = "insufficient_pool"

type RunInput struct {
	Roster    []domain.Player
	Tiers     []domain.RankTier
	Criterion RangeCriterion
	TeamSize  int
}

type Result struct {
	Report     Report
	Advisories []Advisory
	Criterion  RangeCriterion
	TeamSize   int
	// Requested is 2*TeamSize, Available the pool size after filtering.
	Requested int
	Available int
}

func (r *Result) Has(a Advisory) bool {
	return lo.Contains(r.Advisories, a)
}

// Engine holds nothing between runs except its sampler.
type Engine struct {
	sampler *Sampler
}

func NewEngine(sampler *Sampler) *Engine {
	if sampler == nil {
		sampler = NewSampler(nil)
	}
	return &Engine{sampler: sampler}
}

// Run filters the roster, samples at most two full teams, re-derives each
// participant's rank from its rating and balances the result. An empty pool is
// ErrEmptyPool; a short pool only adds AdvisoryInsufficientPool.
func (e *Engine) Run(in RunInput) (*Result, error) {
	if in.TeamSize < 1 || in.TeamSize > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTeamSize, in.TeamSize)
	}
	if err := in.Criterion.Validate(); err != nil {
		return nil, err
	}
	if err := CheckTiers(in.Tiers); err != nil {
		return nil, err
	}

	pool := FilterPool(in.Roster, in.Criterion)
	if len(pool) == 0 {
		return nil, domain.ErrEmptyPool
	}

	result := &Result{
		Criterion: in.Criterion,
		TeamSize:  in.TeamSize,
		Requested: 2 * in.TeamSize,
		Available: len(pool),
	}

	participants, short := e.sampler.Sample(pool, result.Requested)
	if short {
		result.Advisories = append(result.Advisories, AdvisoryInsufficientPool)
	}

	// tiers were checked above
	for i := range participants {
		participants[i].Rank = resolveChecked(participants[i].Rating, in.Tiers)
	}

	result.Report = Summarize(Balance(participants))
	return result, nil
}
