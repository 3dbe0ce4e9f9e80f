// Package worker runs background maintenance on a fixed interval.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/domain/service"

	"go.uber.org/fx"
)

type workerServer struct {
	store    service.RevocationStore
	interval time.Duration
	logger   *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Store  service.RevocationStore
}

// NewServer creates the worker that purges expired revocation entries every revocation.purgeInterval.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newWorkerServer(params.Store, params.Cfg.Revocation.PurgeInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWorkerServer(store service.RevocationStore, interval time.Duration, logger *slog.Logger) *workerServer {
	return &workerServer{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Serve purges once at start and then on every tick until stopped.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting revocation purge worker", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.purge(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

func (s *workerServer) purge(ctx context.Context) {
	purgeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	purged, err := s.store.PurgeExpired(purgeCtx)
	if err != nil {
		s.logger.Error("Failed to purge expired revocations", slog.Any("error", err))

		return
	}
	if purged > 0 {
		s.logger.Info("Purged expired revocations", slog.Int64("count", purged))
	}
}

// stop ends the purge loop
func (s *workerServer) stop(_ context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Shutting down revocation purge worker")
		close(s.done)
	})

	return nil
}
