package postgres

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository is the constructor for revokedTokenRepository.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

// Save inserts the revocation; a repeated revocation of the same hash does nothing.
func (repo *revokedTokenRepository) Save(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := &model.RevokedTokenModel{
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		RevokedAt: token.RevokedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token_hash"}}, DoNothing: true}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save revoked token")
	}

	return nil
}

// Exists reads from the primary. A replica may not have seen a revocation committed a moment ago.
func (repo *revokedTokenRepository) Exists(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RevokedTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up revoked token")
	}

	return count > 0, nil
}

func (repo *revokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.RevokedTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge revoked tokens")
	}

	return result.RowsAffected, nil
}
