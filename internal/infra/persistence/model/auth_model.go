package model

import (
	"time"
)

// InvitationModel mirrors the 'invitation_tokens' table. Both the channel and the token are unique.
type InvitationModel struct {
	ChannelID string `gorm:"column:channel_id;type:varchar(64);primaryKey"`
	Token     string `gorm:"type:varchar(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "invitation_tokens"
}

// RevokedTokenModel mirrors the 'revoked_tokens' table, keyed by the SHA-256 hex of the token.
type RevokedTokenModel struct {
	TokenHash string    `gorm:"type:char(64);primaryKey"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
