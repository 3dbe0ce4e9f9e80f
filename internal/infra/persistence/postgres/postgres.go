package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary database (plus replicas when configured), applies pending migrations on
// start if migrations.autoApply is set, and samples pool contention while the app runs.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	// Multi-statement work goes through the transaction manager, single writes need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger, done: make(chan struct{})}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if params.Config.Migrations.AutoApply {
				params.Logger.Info("Applying database migrations")
				if err := migrations.Up(ctx, sqlDB); err != nil {
					return err
				}
			}

			go sampler.run(poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			close(sampler.done)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolSampler logs when requests had to wait for a free connection since the previous sample.
type poolSampler struct {
	db     *sql.DB
	logger *slog.Logger
	done   chan struct{}
	prev   sql.DBStats
}

func (s *poolSampler) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.prev = s.db.Stats()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sample(s.db.Stats())
		}
	}
}

func (s *poolSampler) sample(cur sql.DBStats) {
	waits := cur.WaitCount - s.prev.WaitCount
	waited := cur.WaitDuration - s.prev.WaitDuration
	s.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(context.Background(), level, "Postgres connection pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
