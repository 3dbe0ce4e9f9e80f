package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// IssueOutput is an invitation and whether this call created it.
type IssueOutput struct {
	Invitation *entity.Invitation
	Created    bool
}

// RegisterInput defines the fields of a registration gated by an invitation token.
type RegisterInput struct {
	Token    string
	Username string
	Email    string
	FullName string
	Password string
}

// InviteOutput reports an issued invitation, its registration link and whether the link reached the channel.
type InviteOutput struct {
	Invitation *entity.Invitation
	Link       string
	Created    bool
	Delivered  bool
}

// InvitationUsecase is the invitation gate in front of registration.
type InvitationUsecase interface {
	// Issue returns the unconsumed invitation of a channel, creating one if there is none.
	Issue(ctx context.Context, channelID string) (*IssueOutput, error)

	// Redeem checks that an invitation token is still valid without consuming it.
	Redeem(ctx context.Context, token string) (*entity.Invitation, error)

	// Register creates the user and consumes the invitation in one transaction.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Invite issues an invitation and sends its link over the notification channel.
	// A failed delivery is reported through InviteOutput.Delivered, not as an error.
	Invite(ctx context.Context, channelID string) (*InviteOutput, error)
}
