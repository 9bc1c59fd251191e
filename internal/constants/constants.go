package constants

import "time"

const (
	RemoteRosterTimeout = 10 * time.Second
	RemoteRosterIdle    = 1 * time.Minute
	DatabaseTimeout     = 5 * time.Second
	RequestTimeout      = 30 * time.Second
	PublishTimeout      = 2 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	MatchIDLength = 12
)

const (
	MetricsPath = "/metrics"
	HealthPath  = "/healthz"
)
