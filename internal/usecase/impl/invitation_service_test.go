package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationService_IssueIsIdempotentUntilRedeemed(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()

	first, err := fx.invitations.Issue(ctx, "42")
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := fx.invitations.Issue(ctx, "42")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Invitation.Token, second.Invitation.Token)

	_, err = fx.invitations.Register(ctx, &usecase.RegisterInput{
		Token:    first.Invitation.Token,
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	third, err := fx.invitations.Issue(ctx, "42")
	require.NoError(t, err)
	assert.True(t, third.Created)
	assert.NotEqual(t, first.Invitation.Token, third.Invitation.Token)
}

func TestInvitationService_IssueRequiresChannel(t *testing.T) {
	fx := newGateFixture()

	_, err := fx.invitations.Issue(context.Background(), "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvitationService_Redeem(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()

	issued, err := fx.invitations.Issue(ctx, "42")
	require.NoError(t, err)

	invitation, err := fx.invitations.Redeem(ctx, issued.Invitation.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", invitation.ChannelID)

	_, err = fx.invitations.Redeem(ctx, "bad-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInvitation))

	_, err = fx.invitations.Redeem(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInvitation))

	assert.Equal(t, 1, fx.db.InvitationCount(), "redeem does not consume")
}

func TestInvitationService_RegisterWithBadToken(t *testing.T) {
	fx := newGateFixture()

	_, err := fx.invitations.Register(context.Background(), &usecase.RegisterInput{
		Token:    "bad-token",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInvitation))
	assert.Zero(t, fx.db.UserCount())
}

func TestInvitationService_RegisterDuplicateKeepsInvitation(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()
	registerUser(t, fx, "alice", "alice@example.com", "secret123")

	issued, err := fx.invitations.Issue(ctx, "99")
	require.NoError(t, err)

	_, err = fx.invitations.Register(ctx, &usecase.RegisterInput{
		Token:    issued.Invitation.Token,
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	_, err = fx.invitations.Redeem(ctx, issued.Invitation.Token)
	assert.NoError(t, err, "a failed registration must not consume the invitation")
	assert.Equal(t, 1, fx.db.UserCount())
}

func TestInvitationService_ConcurrentRedemption(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()

	issued, err := fx.invitations.Issue(ctx, "42")
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = fx.invitations.Register(ctx, &usecase.RegisterInput{
				Token:    issued.Invitation.Token,
				Username: "user" + strings.Repeat("x", i),
				Email:    "user" + strings.Repeat("x", i) + "@example.com",
				Password: "secret123",
			})
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInvitation))
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, fx.db.UserCount())
	assert.Zero(t, fx.db.InvitationCount())
}

func TestInvitationService_Invite(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()

	out, err := fx.invitations.Invite(ctx, "42")
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.True(t, out.Delivered)
	assert.Equal(t, "http://localhost:5173/registration?key="+out.Invitation.Token, out.Link)

	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, "42", fx.notifier.sent[0].ChannelID)
	assert.Contains(t, fx.notifier.sent[0].Text, out.Link)
	assert.Nil(t, fx.notifier.sent[0].Image)

	assert.Equal(t, []string{service.AuthEventInvitationIssued}, fx.publisher.Types())
	assert.Equal(t, "true", fx.publisher.events[0].Attributes["delivered"])
}

func TestInvitationService_InviteDeliveryFailureKeepsInvitation(t *testing.T) {
	fx := newGateFixture()
	ctx := context.Background()
	fx.notifier.err = domainerrors.ErrDeliveryFailed

	out, err := fx.invitations.Invite(ctx, "42")
	require.NoError(t, err)
	assert.False(t, out.Delivered)

	invitation, err := fx.invitations.Redeem(ctx, out.Invitation.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", invitation.ChannelID)

	again, err := fx.invitations.Invite(ctx, "42")
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, out.Invitation.Token, again.Invitation.Token)
}

func TestInvitationService_RegistrationLinkEscapesToken(t *testing.T) {
	srv := &invitationService{registrationURL: "https://example.com/registration?ref=bot"}

	link, err := srv.registrationLink("a b&c")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/registration?key=a+b%26c&ref=bot", link)
}
