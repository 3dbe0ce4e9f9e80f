package postgres

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationRepository_FindByChannelID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "invitation_tokens" WHERE channel_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"channel_id", "token", "created_at"}).AddRow("42", "tok-1", now))

	invitation, err := repo.FindByChannelID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", invitation.Token)
	assert.Equal(t, "42", invitation.ChannelID)
}

func TestInvitationRepository_FindByToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "invitation_tokens" WHERE token = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"channel_id", "token", "created_at"}))

	_, err := repo.FindByToken(context.Background(), "bad-token")
	assert.True(t, errors.Is(err, repository.ErrInvitationNotFound))
}

func TestInvitationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	mock.ExpectExec(`INSERT INTO "invitation_tokens"`).WillReturnResult(sqlmock.NewResult(0, 1))

	invitation := &entity.Invitation{ChannelID: "42", Token: "tok-1"}
	require.NoError(t, repo.Create(context.Background(), invitation))
	assert.False(t, invitation.CreatedAt.IsZero())
}

func TestInvitationRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	mock.ExpectExec(`INSERT INTO "invitation_tokens"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "invitation_tokens_pkey"})

	err := repo.Create(context.Background(), &entity.Invitation{ChannelID: "42", Token: "tok-2"})
	assert.True(t, errors.Is(err, repository.ErrInvitationExists))
}

func TestInvitationRepository_DeleteByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	mock.ExpectExec(`DELETE FROM "invitation_tokens" WHERE token = \$1`).
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteByToken(context.Background(), "tok-1"))
}

func TestInvitationRepository_DeleteByToken_AlreadyConsumed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvitationRepository(db)

	mock.ExpectExec(`DELETE FROM "invitation_tokens" WHERE token = \$1`).
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByToken(context.Background(), "tok-1")
	assert.True(t, errors.Is(err, repository.ErrInvitationNotFound))
}

func TestInvitationRepository_LookupsReadPrimary(t *testing.T) {
	db, primary, _ := newMockDBWithReplica(t)
	repo := NewInvitationRepository(db)
	now := time.Now()

	primary.ExpectQuery(`SELECT \* FROM "invitation_tokens" WHERE channel_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"channel_id", "token", "created_at"}).AddRow("42", "tok-1", now))
	primary.ExpectQuery(`SELECT \* FROM "invitation_tokens" WHERE token = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"channel_id", "token", "created_at"}))

	invitation, err := repo.FindByChannelID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", invitation.Token)

	_, err = repo.FindByToken(context.Background(), "tok-1")
	assert.True(t, errors.Is(err, repository.ErrInvitationNotFound))
}
