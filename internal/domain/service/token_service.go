package service

import (
	"errors"

	"gatekeeper/internal/domain/entity"
)

// Decode failures. Callers at the boundary collapse all of them into one Unauthorized error.
var (
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenKindMismatch     = errors.New("token kind does not match")
)

// TokenCodec encodes and decodes signed tokens. It is a pure function of claims, keys and the clock.
type TokenCodec interface {
	// Encode signs the claims. The expiry is written to the claim key of the claims' kind.
	Encode(claims *entity.TokenClaims) (string, error)

	// Decode verifies the token against the key for the expected kind and returns its claims.
	Decode(token string, kind entity.TokenKind) (*entity.TokenClaims, error)

	// Issue mints fresh claims of the given kind for subject with the configured lifetime and encodes them.
	Issue(subject string, kind entity.TokenKind) (string, *entity.TokenClaims, error)
}
