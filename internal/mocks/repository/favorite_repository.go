package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

// NewMockFavoriteRepository creates a mock wired to the test lifecycle.
func NewMockFavoriteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockFavoriteRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockFavoriteRepository) EXPECT() *MockFavoriteRepositoryExpecter {
	return &MockFavoriteRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockFavoriteRepository) Exists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	ret := _m.Called(ctx, userID, restaurantID)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockFavoriteRepositoryExpecter) Exists(ctx, userID, restaurantID interface{}) *mock.Call {
	return _e.mock.On("Exists", ctx, userID, restaurantID)
}

func (_m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	ret := _m.Called(ctx, favorite)

	return ret.Error(0)
}

func (_e *MockFavoriteRepositoryExpecter) Create(ctx, favorite interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, favorite)
}

func (_m *MockFavoriteRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	ret := _m.Called(ctx, userID, restaurantID)

	return ret.Error(0)
}

func (_e *MockFavoriteRepositoryExpecter) Delete(ctx, userID, restaurantID interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, userID, restaurantID)
}

func (_m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteRestaurant, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.FavoriteRestaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.FavoriteRestaurant)
	}

	return r0, ret.Error(1)
}

func (_e *MockFavoriteRepositoryExpecter) ListByUser(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID)
}

func (_m *MockFavoriteRepository) ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error) {
	ret := _m.Called(ctx, userID)

	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}

	return r0, ret.Error(1)
}

func (_e *MockFavoriteRepositoryExpecter) ListRestaurantIDs(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("ListRestaurantIDs", ctx, userID)
}
