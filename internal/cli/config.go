package cli

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/feedbackboard/internal/board/apiclient"
	"github.com/dmitrymomot/feedbackboard/pkg/clientip"
	"github.com/dmitrymomot/feedbackboard/pkg/httpserver"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/ratelimiter"
	"github.com/dmitrymomot/feedbackboard/pkg/requestid"
	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

var (
	ErrUnknownDriver       = errors.New("unknown storage driver")
	ErrUnknownSessionStore = errors.New("unknown session store")
	ErrInvalidTimezone     = errors.New("invalid display timezone")
)

// Config is the application configuration. Postgres and Redis settings are
// loaded only when the selected driver needs them.
type Config struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"APP_NAME" envDefault:"feedbackboard"`
	StorageDriver   string `env:"STORAGE_DRIVER" envDefault:"memory"`
	Seed            bool   `env:"SEED" envDefault:"true"`
	MigrateOnStart  bool   `env:"MIGRATE_ON_START" envDefault:"false"`
	DisplayTimezone string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`

	HTTP      httpserver.Config
	Session   session.Config
	Forward   apiclient.Config
	AuthLimit ratelimiter.Config
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			session.LoggerExtractor(),
		),
	)
}
