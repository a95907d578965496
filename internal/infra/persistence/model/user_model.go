package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. Accounts are keyed by bigserial IDs and
// bound to exactly one social identity via (auth_provider, auth_provider_id).
type UserModel struct {
	ID             int64          `gorm:"primaryKey;autoIncrement"`
	Email          string         `gorm:"type:varchar(255);index"`
	Name           string         `gorm:"type:varchar(100)"`
	AvatarURL      string         `gorm:"type:text"`
	Phone          *string        `gorm:"type:varchar(32);uniqueIndex"`
	AuthProvider   string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_provider_identity"`
	AuthProviderID string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_provider_identity"`
	Role           string         `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive       bool           `gorm:"not null;default:true"`
	Preferences    datatypes.JSON `gorm:"type:jsonb"`
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
