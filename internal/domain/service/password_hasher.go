// Package service declares the ports the use cases call besides persistence.
package service

// PasswordHasher turns passwords into stored digests and verifies login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash is a mismatch.
	Check(password, hash string) bool
}
