package pubsub

import (
	"context"
	"mmr-matchmaker/internal/config"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type TeamSummary struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
	Total   int      `json:"total"`
}

// MatchEvent is emitted once per successful matchmaking run.
type MatchEvent struct {
	MatchID    string      `json:"match_id"`
	Criterion  string      `json:"criterion"`
	TeamSize   int         `json:"team_size"`
	Requested  int         `json:"requested"`
	Available  int         `json:"available"`
	Advisories []string    `json:"advisories,omitempty"`
	TeamA      TeamSummary `json:"team_a"`
	TeamB      TeamSummary `json:"team_b"`
	Gap        int         `json:"gap"`
	CreatedAt  time.Time   `json:"created_at"`
}

type Publisher interface {
	PublishMatch(ctx context.Context, event MatchEvent) error
	Close()
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishMatch(context.Context, MatchEvent) error { return nil }
func (NopPublisher) Close()                                         {}

func New(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (Publisher, error) {
	if cfg.NATSURL == "" {
		logger.Info().Msg("NATS_URL not set, match events disabled")
		return NopPublisher{}, nil
	}

	p, err := NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Close()
			return nil
		},
	})
	return p, nil
}

var Module = fx.Provide(New)
