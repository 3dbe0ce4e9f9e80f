package auth

import (
	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses auth.bcryptCost when it lies within bcrypt's accepted range and
// bcrypt.DefaultCost otherwise.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(digest), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
