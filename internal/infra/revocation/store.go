// Package revocation implements service.RevocationStore on top of PostgreSQL or Redis.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Repo   repository.RevokedTokenRepository
}

// NewStore picks the revocation backend named in the configuration.
func NewStore(params Params) (service.RevocationStore, error) {
	cfg := params.Config.Revocation
	if cfg == nil {
		return nil, errors.New("revocation configuration is missing")
	}

	switch cfg.Backend {
	case config.RevocationBackendPostgres:
		params.Logger.Info("Revocation store ready", slog.String("backend", cfg.Backend))

		return NewPostgresStore(params.Repo, time.Now), nil

	case config.RevocationBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(pingCtx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}
				params.Logger.Info("Revocation store ready",
					slog.String("backend", cfg.Backend),
					slog.String("addr", params.Config.Redis.Addr),
				)

				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.KeyPrefix, time.Now), nil
	}

	return nil, errors.Errorf("unknown revocation backend: %s", cfg.Backend)
}

// HashToken returns the hex encoded SHA-256 of a token. Raw tokens are never stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
