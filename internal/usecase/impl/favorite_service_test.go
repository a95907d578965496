package impl

import (
	"context"
	"testing"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	mockRepo "goveggie/internal/mocks/repository"
	"goveggie/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	favoriteRepo   *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := &mockRepo.StubTransactionManager{Favorites: favoriteRepo}
	service := NewFavoriteService(restaurantRepo, favoriteRepo, txManager)

	return favoriteServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
	}
}

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1}, nil)

	fx.favoriteRepo.EXPECT().
		Exists(ctx, int64(42), int64(1)).
		Return(false, nil)

	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(nil)

	favorited, err := fx.service.Toggle(ctx, 42, 1)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1}, nil)

	fx.favoriteRepo.EXPECT().
		Exists(ctx, int64(42), int64(1)).
		Return(true, nil)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, int64(42), int64(1)).
		Return(nil)

	favorited, err := fx.service.Toggle(ctx, 42, 1)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_Toggle_ConcurrentDeleteIsIdempotent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1}, nil)

	fx.favoriteRepo.EXPECT().
		Exists(ctx, int64(42), int64(1)).
		Return(true, nil)

	// Another request already removed the row between the check and the delete.
	fx.favoriteRepo.EXPECT().
		Delete(ctx, int64(42), int64(1)).
		Return(repository.ErrFavoriteNotFound)

	favorited, err := fx.service.Toggle(ctx, 42, 1)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_Toggle_RestaurantNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.Toggle(ctx, 42, 404)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	expected := []*entity.FavoriteRestaurant{
		{RestaurantID: 1, Name: "素食坊"},
		{RestaurantID: 2, Name: "清心齋"},
	}

	fx.favoriteRepo.EXPECT().
		ListByUser(ctx, int64(42)).
		Return(expected, nil)

	favorites, err := fx.service.List(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, expected, favorites)
}
