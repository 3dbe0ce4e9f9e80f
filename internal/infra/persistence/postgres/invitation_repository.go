package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (repo *invitationRepository) FindByChannelID(ctx context.Context, channelID string) (*entity.Invitation, error) {
	return repo.findOne(ctx, "channel_id = ?", channelID)
}

func (repo *invitationRepository) FindByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	return repo.findOne(ctx, "token = ?", token)
}

// findOne always reads the primary: issue re-reads the row a racing create just committed, and a
// consumed invitation must not look redeemable on a lagging replica.
func (repo *invitationRepository) findOne(ctx context.Context, query string, arg any) (*entity.Invitation, error) {
	var invitationM model.InvitationModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where(query, arg).Take(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find invitation")
	}

	return toInvitationDomain(&invitationM), nil
}

// Create inserts the invitation. Both channel_id and token are unique, so a racing
// issue for the same channel surfaces as ErrInvitationExists.
func (repo *invitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	invitationM := fromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Create(invitationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrInvitationExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	invitation.CreatedAt = invitationM.CreatedAt

	return nil
}

// DeleteByToken is the atomic delete-if-exists that consumes an invitation.
func (repo *invitationRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).Where("token = ?", token).Delete(&model.InvitationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete invitation")
	}

	// No row: another redemption already consumed it.
	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

func toInvitationDomain(invitationM *model.InvitationModel) *entity.Invitation {
	return &entity.Invitation{
		ChannelID: invitationM.ChannelID,
		Token:     invitationM.Token,
		CreatedAt: invitationM.CreatedAt,
	}
}

func fromInvitationDomain(invitation *entity.Invitation) *model.InvitationModel {
	return &model.InvitationModel{
		ChannelID: invitation.ChannelID,
		Token:     invitation.Token,
		CreatedAt: invitation.CreatedAt,
	}
}
