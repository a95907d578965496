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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewNotificationService(notificationRepo, deviceRepo)

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

func TestNotificationService_List_DefaultsPaging(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		ListByUser(ctx, int64(42), 20, 0, false).
		Return([]*entity.UserNotification{{ID: 1, UserID: 42}}, nil)

	fx.notificationRepo.EXPECT().
		CountByUser(ctx, int64(42)).
		Return(int64(1), int64(1), nil)

	page, err := fx.service.List(ctx, 42, 0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(1), page.UnreadCount)
	assert.Len(t, page.Notifications, 1)
}

func TestNotificationService_List_SecondPageOffset(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		ListByUser(ctx, int64(42), 10, 10, false).
		Return([]*entity.UserNotification{}, nil)

	fx.notificationRepo.EXPECT().
		CountByUser(ctx, int64(42)).
		Return(int64(10), int64(0), nil)

	page, err := fx.service.List(ctx, 42, 2, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
}

func TestNotificationService_List_UnreadOnlyTotalIsUnread(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		ListByUser(ctx, int64(42), 20, 0, true).
		Return([]*entity.UserNotification{{ID: 3, UserID: 42}}, nil)

	fx.notificationRepo.EXPECT().
		CountByUser(ctx, int64(42)).
		Return(int64(9), int64(4), nil)

	page, err := fx.service.List(ctx, 42, 1, 0, true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, int64(4), page.UnreadCount)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CountByUser(ctx, int64(42)).
		Return(int64(7), int64(3), nil)

	count, err := fx.service.UnreadCount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, int64(42), int64(404)).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, 42, 404)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, int64(42)).
		Return(int64(5), nil)

	count, err := fx.service.MarkAllRead(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestNotificationService_RegisterDevice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, 42, &usecase.DeviceInput{
		DeviceToken: "fcm-token-abc",
		DeviceType:  "Android",
		AppVersion:  "2.3.1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), device.UserID)
	assert.Equal(t, entity.DeviceAndroid, device.DeviceType)
	assert.True(t, device.IsActive)
}

func TestNotificationService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.RegisterDevice(context.Background(), 42, &usecase.DeviceInput{
		DeviceType: "ios",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_RegisterDevice_UnknownDeviceType(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.RegisterDevice(context.Background(), 42, &usecase.DeviceInput{
		DeviceToken: "fcm-token-abc",
		DeviceType:  "blackberry",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
