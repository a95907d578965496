package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockDeviceRepository is a mock implementation of repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates a mock wired to the test lifecycle.
func NewMockDeviceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockDeviceRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceRepository) EXPECT() *MockDeviceRepositoryExpecter {
	return &MockDeviceRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockDeviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	ret := _m.Called(ctx, device)

	return ret.Error(0)
}

func (_e *MockDeviceRepositoryExpecter) Upsert(ctx, device interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, device)
}

func (_m *MockDeviceRepository) Deactivate(ctx context.Context, deviceToken string) error {
	ret := _m.Called(ctx, deviceToken)

	return ret.Error(0)
}

func (_e *MockDeviceRepositoryExpecter) Deactivate(ctx, deviceToken interface{}) *mock.Call {
	return _e.mock.On("Deactivate", ctx, deviceToken)
}

func (_m *MockDeviceRepository) ListActiveTokensByUsers(ctx context.Context, userIDs []int64) ([]string, error) {
	ret := _m.Called(ctx, userIDs)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

func (_e *MockDeviceRepositoryExpecter) ListActiveTokensByUsers(ctx, userIDs interface{}) *mock.Call {
	return _e.mock.On("ListActiveTokensByUsers", ctx, userIDs)
}
