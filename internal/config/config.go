package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	DBDriver    string
	DBPath      string
	DatabaseURL string
	ServerPort  string
	LogLevel    zerolog.Level

	NATSURL     string
	NATSSubject string

	// RosterURL points at another instance whose players and ranks are used
	// for matchmaking instead of the local database.
	RosterURL string

	DefaultTeamSize int
	MaxTeamSize     int
	// 0 seeds the sampler from runtime entropy.
	SamplerSeed uint64

	envFileLoaded bool
}

func Load() (*Config, error) {
	loaded := godotenv.Load() == nil

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	defaultTeamSize, err := getEnvInt("DEFAULT_TEAM_SIZE", 5)
	if err != nil {
		return nil, err
	}
	maxTeamSize, err := getEnvInt("MAX_TEAM_SIZE", 10)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseUint(getEnv("SAMPLER_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SAMPLER_SEED: %w", err)
	}

	cfg := &Config{
		DBDriver:        getEnv("DB_DRIVER", DriverSQLite),
		DBPath:          getEnv("DB_PATH", "matchmaker.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        level,
		NATSURL:         getEnv("NATS_URL", ""),
		NATSSubject:     getEnv("NATS_SUBJECT", "match.found"),
		RosterURL:       getEnv("ROSTER_URL", ""),
		DefaultTeamSize: defaultTeamSize,
		MaxTeamSize:     maxTeamSize,
		SamplerSeed:     seed,
		envFileLoaded:   loaded,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.MaxTeamSize < 1 {
		return fmt.Errorf("MAX_TEAM_SIZE must be at least 1, got %d", c.MaxTeamSize)
	}
	if c.DefaultTeamSize < 1 || c.DefaultTeamSize > c.MaxTeamSize {
		return fmt.Errorf("DEFAULT_TEAM_SIZE must be between 1 and %d, got %d", c.MaxTeamSize, c.DefaultTeamSize)
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverPostgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func LogLoaded(cfg *Config, logger zerolog.Logger) {
	if !cfg.envFileLoaded {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	logger.Info().
		Str("db_driver", cfg.DBDriver).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel.String()).
		Bool("nats", cfg.NATSURL != "").
		Str("roster_url", cfg.RosterURL).
		Int("default_team_size", cfg.DefaultTeamSize).
		Int("max_team_size", cfg.MaxTeamSize).
		Msg("configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(LogLoaded),
)
