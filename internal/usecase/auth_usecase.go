// Package usecase defines the application's use case interfaces and their
// input/output types. Handlers depend on these, never on the impl package.
package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// SocialLoginInput carries the verified profile the mobile client obtained
// from the social provider SDK.
type SocialLoginInput struct {
	Provider   entity.SocialProvider `json:"provider"`
	ProviderID string                `json:"provider_id"`
	Email      string                `json:"email"`
	Name       string                `json:"name"`
	AvatarURL  string                `json:"avatar_url"`
}

// LoginResult bundles the issued token with the resolved account.
// NeedPhone stays true until the account has a phone number bound.
type LoginResult struct {
	Token     string       `json:"token"`
	User      *entity.User `json:"user"`
	IsNew     bool         `json:"is_new"`
	NeedPhone bool         `json:"need_phone"`
}

// ProfileUpdateInput carries the mutable profile fields.
type ProfileUpdateInput struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Preferences []byte `json:"preferences"`
}

// AuthUsecase defines the interface for account and session use cases.
type AuthUsecase interface {
	// SocialLogin resolves or creates the account bound to the social
	// identity and issues an access token.
	SocialLogin(ctx context.Context, input *SocialLoginInput) (*LoginResult, error)

	// GetProfile returns the account for the authenticated user.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile modifies the mutable profile fields.
	UpdateProfile(ctx context.Context, userID int64, input *ProfileUpdateInput) (*entity.User, error)

	// BindPhone attaches a phone number to the account. A number held by a
	// different account is rejected.
	BindPhone(ctx context.Context, userID int64, phone string) error
}
