package service

import (
	"context"
	"time"
)

// RevocationStore tracks tokens that must be rejected before their natural expiry.
// A revocation must be visible to IsRevoked as soon as Revoke returns.
type RevocationStore interface {
	// Revoke marks token as revoked until expiresAt. Revoking twice is not an error.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, token string) (bool, error)

	// PurgeExpired drops entries for tokens that have expired on their own.
	PurgeExpired(ctx context.Context) (int64, error)
}
