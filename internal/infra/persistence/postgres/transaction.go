// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager runs registration steps against one PostgreSQL transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. A panic inside fn rolls back and
// propagates. Errors from fn come back unwrapped so callers can match domain sentinels.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "registration transaction")
	}

	return nil
}

// txRepositories hands out repositories bound to tx.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) InvitationRepo() repository.InvitationRepository {
	return NewInvitationRepository(r.tx)
}
