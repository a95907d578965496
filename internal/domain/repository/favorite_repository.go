// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrFavoriteNotFound is returned when a favorite row is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// Exists reports whether the user has favorited the restaurant.
	Exists(ctx context.Context, userID, restaurantID int64) (bool, error)

	// Create inserts a favorite row.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite row for the pair.
	Delete(ctx context.Context, userID, restaurantID int64) error

	// ListByUser returns the user's favorites joined with restaurant display fields.
	ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteRestaurant, error)

	// ListRestaurantIDs returns just the favorited restaurant IDs for a user,
	// used to flag search results.
	ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error)
}
