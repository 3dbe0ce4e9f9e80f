package handler

import (
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

const tokenTypeBearer = "bearer"

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerRequest struct {
	Key      string `json:"key" validate:"required"`
	Username string `json:"username" validate:"required,max=30"`
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	// bcrypt ignores everything past 72 bytes
	Password string `json:"password" validate:"required,max=72"`
}

type updateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=72"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries the access token. The refresh token is set as a cookie alongside it.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user,omitempty"`
}

type invitationCheckResponse struct {
	Valid bool `json:"valid"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Disabled:  user.Disabled,
		CreatedAt: user.CreatedAt,
	}
}

func newTokenResponse(user *entity.User, tokens *entity.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken: tokens.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   tokens.AccessExpiresAt,
		User:        newUserResponse(user),
	}
}
