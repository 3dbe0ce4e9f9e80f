package entity

import (
	"time"
)

// TokenKind tags a claim set so an access token is never accepted where a refresh token is required and vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Valid reports whether k is one of the known kinds.
func (k TokenKind) Valid() bool {
	return k == TokenKindAccess || k == TokenKindRefresh
}

// TokenClaims is the single claim shape carried by every signed token.
type TokenClaims struct {
	Kind      TokenKind
	Subject   string    // Username of the token holder.
	ID        string    // Unique token id, so two tokens minted in the same second differ.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims are past their expiry at now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Remaining returns how long the claims stay valid from now, never negative.
func (c *TokenClaims) Remaining(now time.Time) time.Duration {
	if d := c.ExpiresAt.Sub(now); d > 0 {
		return d
	}

	return 0
}

// TokenPair is the result of minting a session: a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// RevokedToken is a token that must be rejected until its natural expiry.
// Only a hash of the token is kept.
type RevokedToken struct {
	TokenHash string
	ExpiresAt time.Time
	RevokedAt time.Time
}
