package service

import (
	"context"
	"errors"
	"fmt"
	"mmr-matchmaker/internal/config"
	"mmr-matchmaker/internal/constants"
	"mmr-matchmaker/internal/domain"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/metrics"
	"mmr-matchmaker/internal/pubsub"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Match struct {
	ID        string
	CreatedAt time.Time
	*matchmaking.Result
}

type MatchService struct {
	source    matchmaking.RosterSource
	engine    *matchmaking.Engine
	publisher pubsub.Publisher
	metrics   *metrics.Metrics
	cfg       *config.Config
	logger    zerolog.Logger
}

func NewMatchService(source matchmaking.RosterSource, engine *matchmaking.Engine, publisher pubsub.Publisher, m *metrics.Metrics, cfg *config.Config, logger zerolog.Logger) *MatchService {
	return &MatchService{source: source, engine: engine, publisher: publisher, metrics: m, cfg: cfg, logger: logger}
}

// FindMatch balances two teams out of the current roster. teamSize 0 means the
// configured default.
func (s *MatchService) FindMatch(ctx context.Context, criterion matchmaking.RangeCriterion, teamSize int) (*Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if teamSize == 0 {
		teamSize = s.cfg.DefaultTeamSize
	}
	if teamSize < 1 || teamSize > s.cfg.MaxTeamSize {
		return nil, fmt.Errorf("%w: %d not in 1..%d", domain.ErrInvalidTeamSize, teamSize, s.cfg.MaxTeamSize)
	}

	s.logger.Info().Str("criterion", criterion.String()).Int("team_size", teamSize).Msg("finding match")

	var (
		roster []domain.Player
		tiers  []domain.RankTier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.source.ListPlayers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tiers, err = s.source.ListRanks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to load roster")
		s.metrics.ObserveFailure(metrics.OutcomeError)
		return nil, err
	}

	result, err := s.engine.Run(matchmaking.RunInput{
		Roster:    roster,
		Tiers:     tiers,
		Criterion: criterion,
		TeamSize:  teamSize,
	})
	if errors.Is(err, domain.ErrEmptyPool) {
		s.logger.Warn().Str("criterion", criterion.String()).Int("roster", len(roster)).Msg("no players in pool")
		s.metrics.ObserveFailure(metrics.OutcomeEmptyPool)
		return nil, err
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("matchmaking failed")
		s.metrics.ObserveFailure(metrics.OutcomeError)
		return nil, err
	}

	id, err := gonanoid.New(constants.MatchIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate match id: %w", err)
	}
	match := &Match{ID: id, CreatedAt: time.Now().UTC(), Result: result}

	s.metrics.ObserveMatch(result)

	if result.Has(matchmaking.AdvisoryInsufficientPool) {
		s.logger.Info().
			Str("match_id", id).
			Int("available", result.Available).
			Int("requested", result.Requested).
			Msg("not enough players, using the whole pool")
	}

	pubCtx, pubCancel := context.WithTimeout(ctx, constants.PublishTimeout)
	defer pubCancel()
	if err := s.publisher.PublishMatch(pubCtx, toEvent(match)); err != nil {
		s.logger.Warn().Err(err).Str("match_id", id).Msg("failed to publish match event")
	}

	s.logger.Info().
		Str("match_id", id).
		Int("team_a_total", result.Report.A.Total).
		Int("team_b_total", result.Report.B.Total).
		Int("gap", result.Report.Gap).
		Msg("match balanced")

	return match, nil
}

func toEvent(m *Match) pubsub.MatchEvent {
	return pubsub.MatchEvent{
		MatchID:    m.ID,
		Criterion:  m.Criterion.String(),
		TeamSize:   m.TeamSize,
		Requested:  m.Requested,
		Available:  m.Available,
		Advisories: lo.Map(m.Advisories, func(a matchmaking.Advisory, _ int) string { return string(a) }),
		TeamA:      toTeamSummary(m.Report.A),
		TeamB:      toTeamSummary(m.Report.B),
		Gap:        m.Report.Gap,
		CreatedAt:  m.CreatedAt,
	}
}

func toTeamSummary(t matchmaking.TeamStats) pubsub.TeamSummary {
	return pubsub.TeamSummary{
		Name:    t.Name,
		Players: lo.Map(t.Players, func(p domain.Player, _ int) string { return p.Name }),
		Total:   t.Total,
	}
}
