package postgres

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokenRepository_SaveIsIdempotentInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevokedTokenRepository(db)

	mock.ExpectExec(`INSERT INTO "revoked_tokens" .* ON CONFLICT \("token_hash"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "revoked_tokens" .* ON CONFLICT \("token_hash"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	token := &entity.RevokedToken{TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour), RevokedAt: time.Now()}
	require.NoError(t, repo.Save(context.Background(), token))
	require.NoError(t, repo.Save(context.Background(), token))
}

func TestRevokedTokenRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevokedTokenRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "revoked_tokens" WHERE token_hash = \$1`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "revoked_tokens" WHERE token_hash = \$1`).
		WithArgs("def").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	revoked, err := repo.Exists(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.Exists(context.Background(), "def")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokedTokenRepository_ExistsReadsPrimaryAfterSave(t *testing.T) {
	db, primary, _ := newMockDBWithReplica(t)
	repo := NewRevokedTokenRepository(db)

	primary.ExpectExec(`INSERT INTO "revoked_tokens"`).WillReturnResult(sqlmock.NewResult(0, 1))
	primary.ExpectQuery(`SELECT count\(\*\) FROM "revoked_tokens" WHERE token_hash = \$1`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	token := &entity.RevokedToken{TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour), RevokedAt: time.Now()}
	require.NoError(t, repo.Save(context.Background(), token))

	revoked, err := repo.Exists(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokedTokenRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevokedTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "revoked_tokens" WHERE expires_at < \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
