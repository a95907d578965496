// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhone is returned when a phone number is already bound to another account.
	ErrDuplicatePhone = errors.New("phone number already linked")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByProvider retrieves a user bound to the given social identity.
	FindByProvider(ctx context.Context, provider entity.SocialProvider, providerID string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// LinkProvider binds a social identity to an existing account found by email.
	LinkProvider(ctx context.Context, userID int64, provider entity.SocialProvider, providerID string) error

	// TouchLastLogin stamps the last login time for a user.
	TouchLastLogin(ctx context.Context, userID int64) error

	// UpdatePhone binds a phone number to a user. Returns ErrDuplicatePhone
	// when the number is held by a different account.
	UpdatePhone(ctx context.Context, userID int64, phone string) error

	// ListActiveIDs returns the IDs of all active users, for broadcast fan-out.
	ListActiveIDs(ctx context.Context) ([]int64, error)

	// CountAll returns the total number of accounts.
	CountAll(ctx context.Context) (int64, error)
}
