package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const invitationText = "Follow the link to register: "

// invitationService implements the InvitationUsecase interface.
type invitationService struct {
	txManager       repository.TransactionManager
	invitationRepo  repository.InvitationRepository
	hasher          service.PasswordHasher
	notifier        service.Notifier
	qrcode          service.QRCodeService
	publisher       service.EventPublisher
	registrationURL string
	sendQRCode      bool
	newToken        func() string
	logger          *slog.Logger
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InvitationRepo repository.InvitationRepository
	Hasher         service.PasswordHasher
	Notifier       service.Notifier
	QRCode         service.QRCodeService
	Publisher      service.EventPublisher `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewInvitationService is the constructor for invitationService.
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return newInvitationService(params, uuid.NewString)
}

func newInvitationService(params InvitationServiceParams, newToken func() string) *invitationService {
	srv := &invitationService{
		txManager:      params.TxManager,
		invitationRepo: params.InvitationRepo,
		hasher:         params.Hasher,
		notifier:       params.Notifier,
		qrcode:         params.QRCode,
		publisher:      params.Publisher,
		newToken:       newToken,
		logger:         params.Logger,
	}

	if params.Config != nil && params.Config.Invitation != nil {
		srv.registrationURL = params.Config.Invitation.RegistrationURL
		srv.sendQRCode = params.Config.Invitation.SendQRCode
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue returns the channel's pending invitation or creates one. A concurrent create for the same
// channel surfaces as ErrInvitationExists, in which case the winner's invitation is read back once.
func (srv *invitationService) Issue(ctx context.Context, channelID string) (*usecase.IssueOutput, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("channel id is required")
	}

	existing, err := srv.invitationRepo.FindByChannelID(ctx, channelID)
	if err == nil {
		return &usecase.IssueOutput{Invitation: existing}, nil
	}
	if !errors.Is(err, repository.ErrInvitationNotFound) {
		return nil, errors.Wrap(err, "failed to find invitation")
	}

	invitation := &entity.Invitation{ChannelID: channelID, Token: srv.newToken()}
	err = srv.invitationRepo.Create(ctx, invitation)
	if err == nil {
		srv.log(ctx).Info("Invitation issued", slog.String("channel_id", channelID))

		return &usecase.IssueOutput{Invitation: invitation, Created: true}, nil
	}
	if !errors.Is(err, repository.ErrInvitationExists) {
		return nil, errors.Wrap(err, "failed to create invitation")
	}

	existing, err = srv.invitationRepo.FindByChannelID(ctx, channelID)
	if errors.Is(err, repository.ErrInvitationNotFound) {
		return nil, domainerrors.ErrInvitationConflict
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read invitation")
	}

	return &usecase.IssueOutput{Invitation: existing}, nil
}

// Redeem reports whether token names a pending invitation. It does not consume it.
func (srv *invitationService) Redeem(ctx context.Context, token string) (*entity.Invitation, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidInvitation
	}

	invitation, err := srv.invitationRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrInvitationNotFound) {
		return nil, domainerrors.ErrInvalidInvitation
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invitation")
	}

	return invitation, nil
}

// Register consumes the invitation and creates the user in one transaction. The invitation row is
// deleted first, so of two concurrent registrations with the same token only one sees a deleted row.
func (srv *invitationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input.Token == "" {
		return nil, domainerrors.ErrInvalidInvitation
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.InvitationRepo().DeleteByToken(ctx, input.Token); err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return domainerrors.ErrInvalidInvitation
			}

			return errors.Wrap(err, "failed to consume invitation")
		}

		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Info("Registration rejected",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))
	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), service.AuthEventRegistered, user.Username, nil)

	return user, nil
}

// Invite issues the channel's invitation and sends the registration link, with a QR code when enabled.
func (srv *invitationService) Invite(ctx context.Context, channelID string) (*usecase.InviteOutput, error) {
	issued, err := srv.Issue(ctx, channelID)
	if err != nil {
		return nil, err
	}

	link, err := srv.registrationLink(issued.Invitation.Token)
	if err != nil {
		return nil, err
	}

	output := &usecase.InviteOutput{
		Invitation: issued.Invitation,
		Link:       link,
		Created:    issued.Created,
	}

	notification := &service.Notification{
		ChannelID: issued.Invitation.ChannelID,
		Text:      invitationText + link,
	}
	if srv.sendQRCode && srv.qrcode != nil {
		png, err := srv.qrcode.GeneratePNG(link)
		if err != nil {
			srv.log(ctx).Warn("Failed to render invitation QR code", slog.Any("error", err))
		} else {
			notification.Image = png
			notification.ImageName = "invitation.png"
		}
	}

	if err := srv.notifier.Notify(ctx, notification); err != nil {
		srv.log(ctx).Warn("Invitation delivery failed",
			slog.String("channel_id", issued.Invitation.ChannelID),
			slog.Any("error", err),
		)
	} else {
		output.Delivered = true
	}

	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), service.AuthEventInvitationIssued, issued.Invitation.ChannelID, map[string]string{
		"created":   strconv.FormatBool(issued.Created),
		"delivered": strconv.FormatBool(output.Delivered),
	})

	return output, nil
}

// registrationLink appends the invitation token as the key query parameter.
func (srv *invitationService) registrationLink(token string) (string, error) {
	u, err := url.Parse(srv.registrationURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid registration url")
	}

	query := u.Query()
	query.Set("key", token)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
