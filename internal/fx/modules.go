package fx

import (
	"database/sql"
	"mmr-matchmaker/internal/api"
	"mmr-matchmaker/internal/config"
	"mmr-matchmaker/internal/database"
	"mmr-matchmaker/internal/db"
	"mmr-matchmaker/internal/logger"
	"mmr-matchmaker/internal/matchmaking"
	"mmr-matchmaker/internal/metrics"
	"mmr-matchmaker/internal/pubsub"
	"mmr-matchmaker/internal/repository"
	"mmr-matchmaker/internal/server"
	"mmr-matchmaker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideSampler(cfg *config.Config) *matchmaking.Sampler {
	if cfg.SamplerSeed != 0 {
		return matchmaking.NewSeededSampler(cfg.SamplerSeed)
	}
	return matchmaking.NewSampler(nil)
}

// ProvideRosterSource reads from a remote instance when ROSTER_URL is set and
// from the local database otherwise.
func ProvideRosterSource(cfg *config.Config, players *repository.PlayerRepository, ranks *repository.RankRepository, logger zerolog.Logger) matchmaking.RosterSource {
	if cfg.RosterURL != "" {
		logger.Info().Str("roster_url", cfg.RosterURL).Msg("using remote roster")
		return api.NewRosterClient(cfg, logger)
	}
	return repository.NewRoster(players, ranks)
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewRankRepository),
	fx.Provide(ProvideRosterSource),
	// engine
	fx.Provide(ProvideSampler),
	fx.Provide(matchmaking.NewEngine),
	// infra
	metrics.Module,
	pubsub.Module,
	// svc
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewRankService),
	// server
	fx.Provide(server.NewMatchmakingServer),
)
