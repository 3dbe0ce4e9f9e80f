package impl

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service    *sessionService
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	tokens     *mockSvc.MockTokenCodec
	revocation *mockSvc.MockRevocationStore
	publisher  *mockSvc.MockEventPublisher
	now        time.Time
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenCodec(t)
	revocation := mockSvc.NewMockRevocationStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := newSessionService(SessionServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		UserRepo:   userRepo,
		Hasher:     hasher,
		Tokens:     tokens,
		Revocation: revocation,
		Publisher:  publisher,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	}, func() time.Time { return now })

	return sessionServiceFixtures{
		service:    srv,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
		revocation: revocation,
		publisher:  publisher,
		now:        now,
	}
}

func TestSessionService_Authenticate_DecodeFailuresAreUnauthorized(t *testing.T) {
	for _, decodeErr := range []error{
		service.ErrTokenInvalidSignature,
		service.ErrTokenMalformed,
		service.ErrTokenExpired,
		service.ErrTokenKindMismatch,
	} {
		t.Run(decodeErr.Error(), func(t *testing.T) {
			fx := createTestSessionService(t)

			fx.tokens.EXPECT().Decode("tok", entity.TokenKindAccess).Return(nil, decodeErr)

			_, err := fx.service.Authenticate(context.Background(), "tok")
			assert.Equal(t, domainerrors.ErrUnauthorized, err, "the decode reason must not leak")
		})
	}
}

func TestSessionService_Authenticate_RevocationStoreDownFailsClosed(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	storeErr := errors.New("redis: connection refused")

	fx.tokens.EXPECT().Decode("tok", entity.TokenKindAccess).
		Return(&entity.TokenClaims{Kind: entity.TokenKindAccess, Subject: "alice", ExpiresAt: fx.now.Add(time.Minute)}, nil)
	fx.revocation.EXPECT().IsRevoked(ctx, "tok").Return(false, storeErr)

	_, err := fx.service.Authenticate(ctx, "tok")
	assert.True(t, errors.Is(err, storeErr))
}

func TestSessionService_Authenticate_DeletedUser(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Decode("tok", entity.TokenKindAccess).
		Return(&entity.TokenClaims{Kind: entity.TokenKindAccess, Subject: "ghost", ExpiresAt: fx.now.Add(time.Minute)}, nil)
	fx.revocation.EXPECT().IsRevoked(ctx, "tok").Return(false, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Authenticate(ctx, "tok")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionService_Login_StorageError(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	dbErr := errors.New("too many connections")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_IssueFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{Username: "alice", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hash").Return(true)
	fx.tokens.EXPECT().Issue("alice", entity.TokenKindAccess).Return("", nil, errors.New("signing failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})
	assert.ErrorContains(t, err, "signing failed")
}

func TestSessionService_Login_PublishesEvent(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{Username: "alice", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hash").Return(true)
	fx.tokens.EXPECT().Issue("alice", entity.TokenKindAccess).
		Return("access", &entity.TokenClaims{ExpiresAt: fx.now.Add(15 * time.Minute)}, nil)
	fx.tokens.EXPECT().Issue("alice", entity.TokenKindRefresh).
		Return("refresh", &entity.TokenClaims{ExpiresAt: fx.now.Add(168 * time.Hour)}, nil)
	fx.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.MatchedBy(func(e *service.AuthEvent) bool {
			return e.Type == service.AuthEventLogin && e.Subject == "alice"
		})).
		Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.Tokens.AccessToken)
	assert.Equal(t, "refresh", out.Tokens.RefreshToken)
}

func TestSessionService_Logout_RevokeFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	expiresAt := fx.now.Add(time.Minute)
	storeErr := errors.New("write failed")

	fx.tokens.EXPECT().Decode("tok", entity.TokenKindAccess).
		Return(&entity.TokenClaims{Kind: entity.TokenKindAccess, Subject: "alice", ExpiresAt: expiresAt}, nil)
	fx.revocation.EXPECT().Revoke(ctx, "tok", expiresAt).Return(storeErr)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{AccessToken: "tok"})
	assert.True(t, errors.Is(err, storeErr))
}

func TestSessionService_Logout_InvalidTokenIsUnauthorized(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokens.EXPECT().Decode("tok", entity.TokenKindAccess).Return(nil, service.ErrTokenExpired)

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{AccessToken: "tok"})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
