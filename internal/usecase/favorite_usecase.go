package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// FavoriteUsecase defines the interface for favorites use cases.
type FavoriteUsecase interface {
	// Toggle flips the favorite state and reports the new state.
	Toggle(ctx context.Context, userID, restaurantID int64) (favorited bool, err error)

	// List returns the user's favorites, newest first.
	List(ctx context.Context, userID int64) ([]*entity.FavoriteRestaurant, error)
}
