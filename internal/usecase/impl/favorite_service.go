package impl

import (
	"context"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
)

type favoriteService struct {
	restaurantRepo repository.RestaurantRepository
	txManager      repository.TransactionManager
	favoriteRepo   repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance.
func NewFavoriteService(
	restaurantRepo repository.RestaurantRepository,
	favoriteRepo repository.FavoriteRepository,
	txManager repository.TransactionManager,
) usecase.FavoriteUsecase {
	return &favoriteService{
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		txManager:      txManager,
	}
}

// Toggle flips the favorite state and reports the new state. The check and
// the write run in one transaction so two rapid taps cannot double-insert.
func (s *favoriteService) Toggle(ctx context.Context, userID, restaurantID int64) (bool, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return false, domainerrors.ErrRestaurantNotFound
		}

		return false, errors.Wrap(err, "failed to find restaurant")
	}

	var favorited bool
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		favoriteRepo := factory.NewFavoriteRepository()

		exists, err := favoriteRepo.Exists(ctx, userID, restaurantID)
		if err != nil {
			return err
		}

		if exists {
			if err := favoriteRepo.Delete(ctx, userID, restaurantID); err != nil &&
				!errors.Is(err, repository.ErrFavoriteNotFound) {
				return err
			}
			favorited = false

			return nil
		}

		if err := favoriteRepo.Create(ctx, &entity.Favorite{
			UserID:       userID,
			RestaurantID: restaurantID,
		}); err != nil {
			return err
		}
		favorited = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle favorite")
	}

	return favorited, nil
}

// List returns the user's favorites, newest first.
func (s *favoriteService) List(ctx context.Context, userID int64) ([]*entity.FavoriteRestaurant, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
