// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// SessionOutput is a freshly minted session for a user.
type SessionOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// RefreshOutput is the result of exchanging a refresh token.
// Rotated is false when the presented refresh token was handed back unchanged.
type RefreshOutput struct {
	User    *entity.User
	Tokens  *entity.TokenPair
	Rotated bool
}

// LogoutInput carries the tokens to revoke. RefreshToken is optional.
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// UpdateProfileInput holds the profile fields to change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email    *string
	FullName *string
	Password *string
}

// SessionUsecase is the session manager: login, bearer authentication, refresh and logout.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Authenticate resolves the user behind an access token. Every token failure is ErrUnauthorized.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)

	// Refresh always mints a new access token and rotates the refresh token once it nears expiry.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the access token and, when present, the refresh token. Repeating it is a no-op.
	Logout(ctx context.Context, input *LogoutInput) error

	UpdateProfile(ctx context.Context, user *entity.User, input *UpdateProfileInput) (*entity.User, error)

	// StartSession mints a token pair for a user that has already been verified, e.g. right after registration.
	StartSession(ctx context.Context, user *entity.User) (*entity.TokenPair, error)
}
