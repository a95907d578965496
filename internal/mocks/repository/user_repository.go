// Package repository provides hand-maintained testify mocks for the
// repository interfaces, kept in sync with the interfaces they mirror.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test lifecycle.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepositoryExpecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepositoryExpecter) FindByEmail(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_m *MockUserRepository) FindByProvider(ctx context.Context, provider entity.SocialProvider, providerID string) (*entity.User, error) {
	ret := _m.Called(ctx, provider, providerID)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepositoryExpecter) FindByProvider(ctx, provider, providerID interface{}) *mock.Call {
	return _e.mock.On("FindByProvider", ctx, provider, providerID)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepositoryExpecter) Create(ctx, user interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepositoryExpecter) Update(ctx, user interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}

func (_m *MockUserRepository) LinkProvider(ctx context.Context, userID int64, provider entity.SocialProvider, providerID string) error {
	ret := _m.Called(ctx, userID, provider, providerID)

	return ret.Error(0)
}

func (_e *MockUserRepositoryExpecter) LinkProvider(ctx, userID, provider, providerID interface{}) *mock.Call {
	return _e.mock.On("LinkProvider", ctx, userID, provider, providerID)
}

func (_m *MockUserRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockUserRepositoryExpecter) TouchLastLogin(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("TouchLastLogin", ctx, userID)
}

func (_m *MockUserRepository) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	ret := _m.Called(ctx, userID, phone)

	return ret.Error(0)
}

func (_e *MockUserRepositoryExpecter) UpdatePhone(ctx, userID, phone interface{}) *mock.Call {
	return _e.mock.On("UpdatePhone", ctx, userID, phone)
}

func (_m *MockUserRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	ret := _m.Called(ctx)

	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepositoryExpecter) ListActiveIDs(ctx interface{}) *mock.Call {
	return _e.mock.On("ListActiveIDs", ctx)
}

func (_m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_e *MockUserRepositoryExpecter) CountAll(ctx interface{}) *mock.Call {
	return _e.mock.On("CountAll", ctx)
}
