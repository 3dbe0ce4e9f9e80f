package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

var (
	// ErrInvitationNotFound is returned when no invitation matches the lookup.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrInvitationExists is returned by Create when the channel or token is already taken.
	ErrInvitationExists = errors.New("invitation already exists")
)

// InvitationRepository stores one-time registration tokens.
type InvitationRepository interface {
	FindByChannelID(ctx context.Context, channelID string) (*entity.Invitation, error)

	FindByToken(ctx context.Context, token string) (*entity.Invitation, error)

	// Create inserts a new invitation. A unique violation yields ErrInvitationExists.
	Create(ctx context.Context, invitation *entity.Invitation) error

	// DeleteByToken consumes an invitation. It returns ErrInvitationNotFound when no row was deleted,
	// which is how a concurrent second redemption is detected.
	DeleteByToken(ctx context.Context, token string) error
}
