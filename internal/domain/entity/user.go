// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record owned by the user directory.
// Username and Email are unique across all users.
type User struct {
	ID           uuid.UUID // Surrogate key, generated by the database.
	Username     string    // Login name and the subject of every token minted for this user.
	Email        string    // Contact email.
	FullName     string    // Optional display name; empty when not provided.
	PasswordHash string    // bcrypt hash of the password. Never leaves the service.
	Disabled     bool      // Disabled users cannot authenticate or refresh.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the user may hold a session.
func (u *User) IsActive() bool {
	return u != nil && !u.Disabled
}
