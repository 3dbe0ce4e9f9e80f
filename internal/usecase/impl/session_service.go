// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokens       service.TokenCodec
	revocation   service.RevocationStore
	publisher    service.EventPublisher
	rotateWindow time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenCodec
	Revocation service.RevocationStore
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return newSessionService(params, time.Now)
}

func newSessionService(params SessionServiceParams, now func() time.Time) *sessionService {
	var rotateWindow time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		rotateWindow = params.Config.Auth.RefreshRotateWindow
	}

	return &sessionService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokens:       params.Tokens,
		revocation:   params.Revocation,
		publisher:    params.Publisher,
		rotateWindow: rotateWindow,
		now:          now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and mints a new token pair.
// A missing user and a wrong password produce the same ErrInvalidCredentials.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed", slog.String("reason", "unknown user"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrInactiveUser
	}

	tokens, err := srv.mint(user.Username)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))
	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), service.AuthEventLogin, user.Username, nil)

	return &usecase.SessionOutput{User: user, Tokens: tokens}, nil
}

// Authenticate decodes an access token, checks it has not been revoked and resolves its subject.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.verify(ctx, accessToken, entity.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.IsActive() {
		return nil, domainerrors.ErrInactiveUser
	}

	return user, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh token is rotated only when
// its remaining lifetime has dropped to the rotate window; otherwise the same token is handed back.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.verify(ctx, refreshToken, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.IsActive() {
		srv.log(ctx).Info("Refresh rejected for disabled user", slog.String("username", user.Username))

		return nil, domainerrors.ErrUnauthorized
	}

	access, accessClaims, err := srv.tokens.Issue(user.Username, entity.TokenKindAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	tokens := &entity.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessClaims.ExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: claims.ExpiresAt,
	}

	rotated := claims.Remaining(srv.now()) <= srv.rotateWindow
	if rotated {
		refresh, refreshClaims, err := srv.tokens.Issue(user.Username, entity.TokenKindRefresh)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue refresh token")
		}
		tokens.RefreshToken = refresh
		tokens.RefreshExpiresAt = refreshClaims.ExpiresAt
	}

	srv.log(ctx).Debug("Session refreshed",
		slog.String("username", user.Username),
		slog.Bool("rotated", rotated),
	)

	return &usecase.RefreshOutput{User: user, Tokens: tokens, Rotated: rotated}, nil
}

// Logout revokes the access token and the refresh token if one is given.
// An unusable refresh token, or one that belongs to another subject, is ignored.
func (srv *sessionService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	claims, err := srv.decode(ctx, input.AccessToken, entity.TokenKindAccess)
	if err != nil {
		return err
	}

	if err := srv.revocation.Revoke(ctx, input.AccessToken, claims.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke access token")
	}

	if input.RefreshToken != "" {
		refreshClaims, err := srv.decode(ctx, input.RefreshToken, entity.TokenKindRefresh)
		switch {
		case err != nil:
			srv.log(ctx).Debug("Skipping refresh token revocation", slog.Any("error", err))
		case refreshClaims.Subject != claims.Subject:
			srv.log(ctx).Warn("Refresh token subject differs from access token subject",
				slog.String("username", claims.Subject),
			)
		default:
			if err := srv.revocation.Revoke(ctx, input.RefreshToken, refreshClaims.ExpiresAt); err != nil {
				return errors.Wrap(err, "failed to revoke refresh token")
			}
		}
	}

	srv.log(ctx).Info("User logged out", slog.String("username", claims.Subject))
	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), service.AuthEventLogout, claims.Subject, nil)

	return nil
}

// UpdateProfile applies the requested profile changes. An email already used by another user is rejected.
func (srv *sessionService) UpdateProfile(ctx context.Context, user *entity.User, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input == nil || (input.Email == nil && input.FullName == nil && input.Password == nil) {
		return user, nil
	}

	updated := *user

	if input.FullName != nil {
		updated.FullName = strings.TrimSpace(*input.FullName)
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		updated.PasswordHash = hash
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if input.Email != nil && *input.Email != user.Email {
			existing, err := userRepo.FindByEmail(ctx, *input.Email)
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
			case err != nil:
				return errors.Wrap(err, "failed to check email")
			case existing.ID != user.ID:
				return domainerrors.ErrEmailAlreadyExists
			}
			updated.Email = *input.Email
		}

		return userRepo.Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.String("username", updated.Username))

	return &updated, nil
}

// StartSession mints a token pair for an already verified user.
func (srv *sessionService) StartSession(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	if !user.IsActive() {
		return nil, domainerrors.ErrInactiveUser
	}

	tokens, err := srv.mint(user.Username)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session started", slog.String("username", user.Username))

	return tokens, nil
}

func (srv *sessionService) mint(subject string) (*entity.TokenPair, error) {
	access, accessClaims, err := srv.tokens.Issue(subject, entity.TokenKindAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refresh, refreshClaims, err := srv.tokens.Issue(subject, entity.TokenKindRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &entity.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessClaims.ExpiresAt,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshClaims.ExpiresAt,
	}, nil
}

// decode collapses every codec failure into ErrUnauthorized and logs the real reason.
func (srv *sessionService) decode(ctx context.Context, token string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokens.Decode(token, kind)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.String("kind", string(kind)), slog.Any("reason", err))

		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// verify decodes the token and rejects it when it has been revoked.
func (srv *sessionService) verify(ctx context.Context, token string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	claims, err := srv.decode(ctx, token, kind)
	if err != nil {
		return nil, err
	}

	revoked, err := srv.revocation.IsRevoked(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		srv.log(ctx).Debug("Token rejected", slog.String("kind", string(kind)), slog.String("reason", "revoked"))

		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
