package revocation

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

type postgresStore struct {
	repo repository.RevokedTokenRepository
	now  func() time.Time
}

// NewPostgresStore keeps revoked token hashes in the revoked_tokens table.
func NewPostgresStore(repo repository.RevokedTokenRepository, now func() time.Time) service.RevocationStore {
	return &postgresStore{repo: repo, now: now}
}

func (s *postgresStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.New("cannot revoke an empty token")
	}

	return s.repo.Save(ctx, &entity.RevokedToken{
		TokenHash: HashToken(token),
		ExpiresAt: expiresAt,
		RevokedAt: s.now(),
	})
}

func (s *postgresStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.repo.Exists(ctx, HashToken(token))
}

// PurgeExpired deletes entries whose token has expired on its own.
func (s *postgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}
