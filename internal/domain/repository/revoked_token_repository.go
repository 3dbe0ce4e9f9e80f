package repository

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
)

// RevokedTokenRepository persists revoked token hashes.
type RevokedTokenRepository interface {
	// Save records the revocation. Saving an already revoked hash is a no-op.
	Save(ctx context.Context, token *entity.RevokedToken) error

	// Exists reports whether the hash has been revoked.
	Exists(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpired removes entries whose token expired before the given time and returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
