package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/feedbackboard/internal/api"
	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/internal/board/apiclient"
	"github.com/dmitrymomot/feedbackboard/internal/board/memstore"
	"github.com/dmitrymomot/feedbackboard/internal/board/pgstore"
	"github.com/dmitrymomot/feedbackboard/internal/web"
	"github.com/dmitrymomot/feedbackboard/pkg/clientip"
	"github.com/dmitrymomot/feedbackboard/pkg/config"
	"github.com/dmitrymomot/feedbackboard/pkg/formatter"
	"github.com/dmitrymomot/feedbackboard/pkg/httpserver"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/pg"
	"github.com/dmitrymomot/feedbackboard/pkg/ratelimiter"
	"github.com/dmitrymomot/feedbackboard/pkg/redis"
	"github.com/dmitrymomot/feedbackboard/pkg/requestid"
	"github.com/dmitrymomot/feedbackboard/pkg/session"
)

const (
	sessionSweepInterval = 10 * time.Minute
	limiterSweepInterval = 5 * time.Minute
)

// app holds the wired dependencies of a running server.
type app struct {
	log          *slog.Logger
	svc          *board.Service
	sessions     *session.Manager
	fmt          *formatter.Formatter
	authLimiter  *ratelimiter.Bucket
	limiterStore *ratelimiter.MemoryStore
	readiness    []httpserver.CheckFunc
	closers      []func()
	// sweep is set when sessions live in process memory.
	sweep *session.MemoryStore
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg Config, log *slog.Logger) (_ *app, err error) {
	a := &app{log: log}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}
	a.fmt = formatter.New(formatter.WithLocation(loc))

	store, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.readiness = append(a.readiness, storageCheck(store))

	sessionStore, err := a.openSessionStore(ctx, cfg.Session)
	if err != nil {
		return nil, err
	}
	a.sessions = session.NewFromConfig(cfg.Session, session.WithStore(sessionStore))

	var forwarder board.Forwarder = board.NopForwarder{}
	if cfg.Forward.BaseURL != "" {
		client, err := apiclient.New(cfg.Forward)
		if err != nil {
			return nil, err
		}
		forwarder = client
	}

	a.limiterStore = ratelimiter.NewMemoryStore()
	a.authLimiter, err = ratelimiter.NewBucket(a.limiterStore, cfg.AuthLimit)
	if err != nil {
		return nil, err
	}

	a.svc = board.NewService(store,
		board.WithForwarder(forwarder),
		board.WithLogger(log.With(logger.Component("board"))),
	)
	return a, nil
}

func (a *app) openStorage(ctx context.Context, cfg Config) (board.Storage, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		if cfg.Seed {
			return memstore.NewSeeded()
		}
		return memstore.New(), nil

	case DriverPostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.readiness = append(a.readiness, pg.Healthcheck(pool))

		if cfg.MigrateOnStart {
			pgCfg.MigrationsDir = pgstore.MigrationsDir
			version, err := pg.Migrate(ctx, pool, pgCfg, pgstore.Migrations, a.log)
			if err != nil {
				return nil, err
			}
			a.log.InfoContext(ctx, "database migrated", slog.Int64("version", version))
		}
		return pgstore.New(pool), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
}

func (a *app) openSessionStore(ctx context.Context, cfg session.Config) (session.Store, error) {
	switch cfg.Store {
	case SessionStoreMemory, "":
		store := session.NewMemoryStore()
		a.sweep = store
		return store, nil

	case SessionStoreRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				a.log.Error("failed to close redis client", logger.Error(err))
			}
		})
		a.readiness = append(a.readiness, redis.Healthcheck(client))
		return session.NewRedisStore(client), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, cfg.Store)
}

// storageCheck reports whether the storage answers a lookup.
func storageCheck(store board.Storage) httpserver.CheckFunc {
	return func(ctx context.Context) error {
		_, err := store.GetFeedback(ctx, "readiness-probe")
		if err == nil || errors.Is(err, board.ErrNotFound) {
			return nil
		}
		return err
	}
}

// runJanitors drops expired in-memory sessions and stale rate limit
// buckets until ctx is done.
func (a *app) runJanitors(ctx context.Context) {
	go a.limiterStore.Run(ctx, limiterSweepInterval)
	if a.sweep != nil {
		go a.sweepSessions(ctx, sessionSweepInterval)
	}
}

func (a *app) sweepSessions(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.sweep.DeleteExpired(ctx); n > 0 {
				a.log.DebugContext(ctx, "expired sessions removed", slog.Int("count", n))
			}
		}
	}
}

// router mounts the JSON API under /api, the health probes under /health
// and the HTML pages at the root.
func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, requestid.Middleware, clientip.Middleware)

	r.Get("/health/live", httpserver.Probe(a.log))
	r.Get("/health/ready", httpserver.Probe(a.log, a.readiness...))

	r.Mount("/api", api.New(a.svc, a.sessions,
		api.WithLogger(a.log),
		api.WithFormatter(a.fmt),
		api.WithAuthLimiter(a.authLimiter),
	).Routes())
	r.Mount("/", web.New(a.svc, a.sessions,
		web.WithLogger(a.log),
		web.WithFormatter(a.fmt),
	).Routes())
	return r
}
