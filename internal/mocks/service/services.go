// Package service provides hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"context"

	"goveggie/internal/domain/entity"
	"goveggie/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &_m.Mock}
}

func (_m *MockTokenService) GenerateToken(userID int64, role entity.Role) (string, error) {
	ret := _m.Called(userID, role)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenServiceExpecter) GenerateToken(userID, role interface{}) *mock.Call {
	return _e.mock.On("GenerateToken", userID, role)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenServiceExpecter) ValidateToken(tokenString interface{}) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}

// MockPushService is a mock implementation of service.PushService.
type MockPushService struct {
	mock.Mock
}

// NewMockPushService creates a mock wired to the test lifecycle.
func NewMockPushService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPushService {
	m := &MockPushService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockPushServiceExpecter struct {
	mock *mock.Mock
}

func (_m *MockPushService) EXPECT() *MockPushServiceExpecter {
	return &MockPushServiceExpecter{mock: &_m.Mock}
}

func (_m *MockPushService) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	ret := _m.Called(ctx, tokens, title, body, data)

	var r2 []string
	if ret.Get(2) != nil {
		r2 = ret.Get(2).([]string)
	}

	return ret.Int(0), ret.Int(1), r2, ret.Error(3)
}

func (_e *MockPushServiceExpecter) SendBatch(ctx, tokens, title, body, data interface{}) *mock.Call {
	return _e.mock.On("SendBatch", ctx, tokens, title, body, data)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock wired to the test lifecycle.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) PublishBroadcastEvent(ctx context.Context, event *service.BroadcastEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_e *MockEventPublisherExpecter) PublishBroadcastEvent(ctx, event interface{}) *mock.Call {
	return _e.mock.On("PublishBroadcastEvent", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (_e *MockEventPublisherExpecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock wired to the test lifecycle.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateShareQR(restaurantID int64) ([]byte, error) {
	ret := _m.Called(restaurantID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_e *MockQRCodeServiceExpecter) GenerateShareQR(restaurantID interface{}) *mock.Call {
	return _e.mock.On("GenerateShareQR", restaurantID)
}

// MockMediaStore is a mock implementation of service.MediaStore.
type MockMediaStore struct {
	mock.Mock
}

// NewMockMediaStore creates a mock wired to the test lifecycle.
func NewMockMediaStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaStore {
	m := &MockMediaStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockMediaStoreExpecter struct {
	mock *mock.Mock
}

func (_m *MockMediaStore) EXPECT() *MockMediaStoreExpecter {
	return &MockMediaStoreExpecter{mock: &_m.Mock}
}

func (_m *MockMediaStore) ReadPhoto(ctx context.Context, legacyID int64, filename string) ([]byte, error) {
	ret := _m.Called(ctx, legacyID, filename)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_e *MockMediaStoreExpecter) ReadPhoto(ctx, legacyID, filename interface{}) *mock.Call {
	return _e.mock.On("ReadPhoto", ctx, legacyID, filename)
}

func (_m *MockMediaStore) WritePhoto(ctx context.Context, legacyID int64, filename string, data []byte) error {
	ret := _m.Called(ctx, legacyID, filename, data)

	return ret.Error(0)
}

func (_e *MockMediaStoreExpecter) WritePhoto(ctx, legacyID, filename, data interface{}) *mock.Call {
	return _e.mock.On("WritePhoto", ctx, legacyID, filename, data)
}

func (_m *MockMediaStore) WriteUpload(ctx context.Context, ext string, data []byte) (string, error) {
	ret := _m.Called(ctx, ext, data)

	return ret.String(0), ret.Error(1)
}

func (_e *MockMediaStoreExpecter) WriteUpload(ctx, ext, data interface{}) *mock.Call {
	return _e.mock.On("WriteUpload", ctx, ext, data)
}

// MockLegacyPhotoFetcher is a mock implementation of service.LegacyPhotoFetcher.
type MockLegacyPhotoFetcher struct {
	mock.Mock
}

// NewMockLegacyPhotoFetcher creates a mock wired to the test lifecycle.
func NewMockLegacyPhotoFetcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLegacyPhotoFetcher {
	m := &MockLegacyPhotoFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MockLegacyPhotoFetcherExpecter struct {
	mock *mock.Mock
}

func (_m *MockLegacyPhotoFetcher) EXPECT() *MockLegacyPhotoFetcherExpecter {
	return &MockLegacyPhotoFetcherExpecter{mock: &_m.Mock}
}

func (_m *MockLegacyPhotoFetcher) Fetch(ctx context.Context, filename string) ([]byte, error) {
	ret := _m.Called(ctx, filename)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_e *MockLegacyPhotoFetcherExpecter) Fetch(ctx, filename interface{}) *mock.Call {
	return _e.mock.On("Fetch", ctx, filename)
}
