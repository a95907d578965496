package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTagRepository is a mock implementation of repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

// NewMockTagRepository creates a mock wired to the test lifecycle.
func NewMockTagRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTagRepository {
	m := &MockTagRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTagRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockTagRepository) EXPECT() *MockTagRepositoryExpecter {
	return &MockTagRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockTagRepository) ListActive(ctx context.Context, tagType string) ([]*entity.Tag, error) {
	ret := _m.Called(ctx, tagType)

	var r0 []*entity.Tag
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Tag)
	}

	return r0, ret.Error(1)
}

func (_e *MockTagRepositoryExpecter) ListActive(ctx, tagType interface{}) *mock.Call {
	return _e.mock.On("ListActive", ctx, tagType)
}

// MockNoticeRepository is a mock implementation of repository.NoticeRepository.
type MockNoticeRepository struct {
	mock.Mock
}

// NewMockNoticeRepository creates a mock wired to the test lifecycle.
func NewMockNoticeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNoticeRepository {
	m := &MockNoticeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockNoticeRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockNoticeRepository) EXPECT() *MockNoticeRepositoryExpecter {
	return &MockNoticeRepositoryExpecter{mock: &_m.Mock}
}

func (_m *MockNoticeRepository) ListActive(ctx context.Context, noticeType string, limit int) ([]*entity.Notice, error) {
	ret := _m.Called(ctx, noticeType, limit)

	var r0 []*entity.Notice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Notice)
	}

	return r0, ret.Error(1)
}

func (_e *MockNoticeRepositoryExpecter) ListActive(ctx, noticeType, limit interface{}) *mock.Call {
	return _e.mock.On("ListActive", ctx, noticeType, limit)
}
