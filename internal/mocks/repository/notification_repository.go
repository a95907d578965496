package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository is a mock implementation of repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates a mock wired to the test lifecycle.
func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockNotificationRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryExpecter {
	return &MockNotificationRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockNotificationRepository) CreateBatch(ctx context.Context, notifications []*entity.UserNotification) error {
	ret := _m.Called(ctx, notifications)

	return ret.Error(0)
}

func (_e *MockNotificationRepositoryExpecter) CreateBatch(ctx, notifications interface{}) *mock.Call {
	return _e.mock.On("CreateBatch", ctx, notifications)
}

func (_m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int, unreadOnly bool) ([]*entity.UserNotification, error) {
	ret := _m.Called(ctx, userID, limit, offset, unreadOnly)

	var r0 []*entity.UserNotification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.UserNotification)
	}

	return r0, ret.Error(1)
}

func (_e *MockNotificationRepositoryExpecter) ListByUser(ctx, userID, limit, offset, unreadOnly interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID, limit, offset, unreadOnly)
}

func (_m *MockNotificationRepository) CountByUser(ctx context.Context, userID int64) (int64, int64, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(int64), ret.Get(1).(int64), ret.Error(2)
}

func (_e *MockNotificationRepositoryExpecter) CountByUser(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("CountByUser", ctx, userID)
}

func (_m *MockNotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	ret := _m.Called(ctx, userID, notificationID)

	return ret.Error(0)
}

func (_e *MockNotificationRepositoryExpecter) MarkRead(ctx, userID, notificationID interface{}) *mock.Call {
	return _e.mock.On("MarkRead", ctx, userID, notificationID)
}

func (_m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_e *MockNotificationRepositoryExpecter) MarkAllRead(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("MarkAllRead", ctx, userID)
}

func (_m *MockNotificationRepository) HasNewRestaurantBroadcast(ctx context.Context, restaurantID int64) (bool, error) {
	ret := _m.Called(ctx, restaurantID)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockNotificationRepositoryExpecter) HasNewRestaurantBroadcast(ctx, restaurantID interface{}) *mock.Call {
	return _e.mock.On("HasNewRestaurantBroadcast", ctx, restaurantID)
}

func (_m *MockNotificationRepository) RecordNewRestaurantBroadcast(ctx context.Context, restaurantID int64) error {
	ret := _m.Called(ctx, restaurantID)

	return ret.Error(0)
}

func (_e *MockNotificationRepositoryExpecter) RecordNewRestaurantBroadcast(ctx, restaurantID interface{}) *mock.Call {
	return _e.mock.On("RecordNewRestaurantBroadcast", ctx, restaurantID)
}
