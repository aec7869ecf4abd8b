package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePasswordModel mirrors the 'one_time_passwords' table.
type OneTimePasswordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_otp_email_code"`
	Code      string    `gorm:"type:varchar(12);not null;index:idx_otp_email_code"`
	Purpose   string    `gorm:"type:varchar(32);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimePasswordModel) TableName() string {
	return "one_time_passwords"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
