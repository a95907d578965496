// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Exists reports whether the user has favorited the restaurant.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

// Create inserts a favorite row.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:       favorite.UserID,
		RestaurantID: favorite.RestaurantID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		// A concurrent toggle already inserted the pair; treat as done.
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the favorite row for the pair.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// ListByUser returns the user's favorites joined with restaurant display fields.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteRestaurant, error) {
	type favoriteRow struct {
		RestaurantID int64
		NameZh       string
		NameEn       string
		CoverPhoto   string
		Lat          float64
		Lng          float64
	}

	var rows []favoriteRow
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Select("user_favorites.restaurant_id, restaurants.name_zh, restaurants.name_en, "+
			"restaurants.cover_photo, restaurants.lat, restaurants.lng").
		Joins("JOIN restaurants ON restaurants.id = user_favorites.restaurant_id").
		Where("user_favorites.user_id = ?", userID).
		Where("restaurants.status = ?", string(entity.RestaurantActive)).
		Order("user_favorites.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.FavoriteRestaurant, 0, len(rows))
	for _, row := range rows {
		name := row.NameZh
		if name == "" {
			name = row.NameEn
		}
		favorites = append(favorites, &entity.FavoriteRestaurant{
			RestaurantID: row.RestaurantID,
			Name:         name,
			CoverPhoto:   row.CoverPhoto,
			Lat:          row.Lat,
			Lng:          row.Lng,
		})
	}

	return favorites, nil
}

// ListRestaurantIDs returns just the favorited restaurant IDs for a user.
func (repo *favoriteRepository) ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite restaurant ids")
	}

	return ids, nil
}
