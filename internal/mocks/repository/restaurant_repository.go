package repository

import (
	"context"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a mock implementation of repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

// NewMockRestaurantRepository creates a mock wired to the test lifecycle.
func NewMockRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockRestaurantRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockRestaurantRepository) EXPECT() *MockRestaurantRepositoryExpecter {
	return &MockRestaurantRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockRestaurantRepository) Search(ctx context.Context, query *repository.RestaurantSearchQuery) ([]*entity.Restaurant, int64, error) {
	ret := _m.Called(ctx, query)

	var r0 []*entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	return r0, ret.Get(1).(int64), ret.Error(2)
}

func (_e *MockRestaurantRepositoryExpecter) Search(ctx, query interface{}) *mock.Call {
	return _e.mock.On("Search", ctx, query)
}

func (_m *MockRestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) FindByID(ctx, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	return ret.Error(0)
}

func (_e *MockRestaurantRepositoryExpecter) Create(ctx, restaurant interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, restaurant)
}

func (_m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	return ret.Error(0)
}

func (_e *MockRestaurantRepositoryExpecter) Update(ctx, restaurant interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, restaurant)
}

func (_m *MockRestaurantRepository) UpdateStatus(ctx context.Context, id int64, status entity.RestaurantStatus) error {
	ret := _m.Called(ctx, id, status)

	return ret.Error(0)
}

func (_e *MockRestaurantRepositoryExpecter) UpdateStatus(ctx, id, status interface{}) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status)
}

func (_m *MockRestaurantRepository) SuggestNames(ctx context.Context, keyword string, limit int) ([]repository.RestaurantNameSuggestion, error) {
	ret := _m.Called(ctx, keyword, limit)

	var r0 []repository.RestaurantNameSuggestion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]repository.RestaurantNameSuggestion)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) SuggestNames(ctx, keyword, limit interface{}) *mock.Call {
	return _e.mock.On("SuggestNames", ctx, keyword, limit)
}

func (_m *MockRestaurantRepository) FindDishTexts(ctx context.Context, keyword string, limit int) ([]string, error) {
	ret := _m.Called(ctx, keyword, limit)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) FindDishTexts(ctx, keyword, limit interface{}) *mock.Call {
	return _e.mock.On("FindDishTexts", ctx, keyword, limit)
}

func (_m *MockRestaurantRepository) AdminList(ctx context.Context, query *repository.AdminRestaurantQuery) ([]*entity.Restaurant, int64, error) {
	ret := _m.Called(ctx, query)

	var r0 []*entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	return r0, ret.Get(1).(int64), ret.Error(2)
}

func (_e *MockRestaurantRepositoryExpecter) AdminList(ctx, query interface{}) *mock.Call {
	return _e.mock.On("AdminList", ctx, query)
}

func (_m *MockRestaurantRepository) CountByStatus(ctx context.Context, status entity.RestaurantStatus) (int64, error) {
	ret := _m.Called(ctx, status)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) CountByStatus(ctx, status interface{}) *mock.Call {
	return _e.mock.On("CountByStatus", ctx, status)
}

func (_m *MockRestaurantRepository) CountAll(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) CountAll(ctx interface{}) *mock.Call {
	return _e.mock.On("CountAll", ctx)
}

func (_m *MockRestaurantRepository) CountByState(ctx context.Context, country string) ([]entity.StatCount, error) {
	ret := _m.Called(ctx, country)

	var r0 []entity.StatCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.StatCount)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) CountByState(ctx, country interface{}) *mock.Call {
	return _e.mock.On("CountByState", ctx, country)
}

func (_m *MockRestaurantRepository) CountByCategory(ctx context.Context) ([]entity.StatCount, error) {
	ret := _m.Called(ctx)

	var r0 []entity.StatCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.StatCount)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) CountByCategory(ctx interface{}) *mock.Call {
	return _e.mock.On("CountByCategory", ctx)
}

func (_m *MockRestaurantRepository) CountByVerification(ctx context.Context) ([]entity.StatCount, error) {
	ret := _m.Called(ctx)

	var r0 []entity.StatCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.StatCount)
	}

	return r0, ret.Error(1)
}

func (_e *MockRestaurantRepositoryExpecter) CountByVerification(ctx interface{}) *mock.Call {
	return _e.mock.On("CountByVerification", ctx)
}
