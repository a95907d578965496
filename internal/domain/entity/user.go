// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"gorm.io/datatypes"
)

// SocialProvider identifies the external identity provider an account is bound to.
type SocialProvider string

const (
	ProviderGoogle   SocialProvider = "google"
	ProviderApple    SocialProvider = "apple"
	ProviderFacebook SocialProvider = "facebook"
	ProviderHuawei   SocialProvider = "huawei"
)

// IsValid checks if the provider is on the allow-list.
func (p SocialProvider) IsValid() bool {
	switch p {
	case ProviderGoogle, ProviderApple, ProviderFacebook, ProviderHuawei:
		return true
	default:
		return false
	}
}

// User represents a directory account. An account is bound to exactly one
// social-provider identity (provider + provider id); the phone number is
// optional and unique across all accounts once bound.
type User struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	AvatarURL      string         `json:"avatar_url"`
	Phone          string         `json:"phone"`
	AuthProvider   SocialProvider `json:"auth_provider"`
	// The provider subject is a credential, never serialized to clients.
	AuthProviderID string `json:"-"`
	Role           Role           `json:"role"`
	IsActive       bool           `json:"is_active"`
	Preferences    datatypes.JSON `json:"preferences"`
	LastLoginAt    *time.Time     `json:"last_login_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
