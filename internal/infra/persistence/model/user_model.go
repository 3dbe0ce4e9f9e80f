// Package model holds the GORM persistence models. They mirror the tables created by the migrations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(30);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FullName     *string   `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(60);not null"`
	Disabled     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
