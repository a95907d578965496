package repository

import (
	"context"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRegionRepository is a mock implementation of repository.RegionRepository.
type MockRegionRepository struct {
	mock.Mock
}

// NewMockRegionRepository creates a mock wired to the test lifecycle.
func NewMockRegionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegionRepository {
	m := &MockRegionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockRegionRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockRegionRepository) EXPECT() *MockRegionRepositoryExpecter {
	return &MockRegionRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockRegionRepository) ListStates(ctx context.Context, country string) ([]*entity.State, error) {
	ret := _m.Called(ctx, country)

	var r0 []*entity.State
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.State)
	}

	return r0, ret.Error(1)
}

func (_e *MockRegionRepositoryExpecter) ListStates(ctx, country interface{}) *mock.Call {
	return _e.mock.On("ListStates", ctx, country)
}

func (_m *MockRegionRepository) FindStateByID(ctx context.Context, id int64) (*entity.State, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.State
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.State)
	}

	return r0, ret.Error(1)
}

func (_e *MockRegionRepositoryExpecter) FindStateByID(ctx, id interface{}) *mock.Call {
	return _e.mock.On("FindStateByID", ctx, id)
}

func (_m *MockRegionRepository) ListAreas(ctx context.Context, stateID int64) ([]*entity.Area, error) {
	ret := _m.Called(ctx, stateID)

	var r0 []*entity.Area
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Area)
	}

	return r0, ret.Error(1)
}

func (_e *MockRegionRepositoryExpecter) ListAreas(ctx, stateID interface{}) *mock.Call {
	return _e.mock.On("ListAreas", ctx, stateID)
}

func (_m *MockRegionRepository) SuggestAreaNames(ctx context.Context, keyword string, limit int) ([]repository.AreaSuggestion, error) {
	ret := _m.Called(ctx, keyword, limit)

	var r0 []repository.AreaSuggestion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]repository.AreaSuggestion)
	}

	return r0, ret.Error(1)
}

func (_e *MockRegionRepositoryExpecter) SuggestAreaNames(ctx, keyword, limit interface{}) *mock.Call {
	return _e.mock.On("SuggestAreaNames", ctx, keyword, limit)
}
