package impl

import (
	"context"
	"testing"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/domain/service"
	mockRepo "goveggie/internal/mocks/repository"
	mockService "goveggie/internal/mocks/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	restaurantRepo   *mockRepo.MockRestaurantRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockService.MockPushService
	eventPublisher   *mockService.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushService := mockService.NewMockPushService(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	txManager := &mockRepo.StubTransactionManager{
		Users:         userRepo,
		Notifications: notificationRepo,
		Restaurants:   restaurantRepo,
	}
	svc := NewAdminService(
		newTestConfig(),
		restaurantRepo,
		userRepo,
		notificationRepo,
		deviceRepo,
		txManager,
		pushService,
		eventPublisher,
		newDiscardLogger(),
	)

	return adminServiceFixtures{
		service:          svc,
		restaurantRepo:   restaurantRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
		eventPublisher:   eventPublisher,
	}
}

func TestAdminService_CreateRestaurant_DefaultsToPending(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Restaurant) bool {
			return r.Status == entity.RestaurantPending && r.NameZh == "素食坊"
		})).
		Return(nil)

	restaurant, err := fx.service.CreateRestaurant(ctx, &usecase.RestaurantInput{NameZh: "素食坊"})
	require.NoError(t, err)
	assert.Equal(t, entity.RestaurantPending, restaurant.Status)
}

func TestAdminService_CreateRestaurant_RequiresName(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.CreateRestaurant(context.Background(), &usecase.RestaurantInput{
		Address: "Jalan Petaling",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateRestaurantStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)

	err := fx.service.UpdateRestaurantStatus(context.Background(), 1, "vaporized")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateRestaurantStatus_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().
		UpdateStatus(ctx, int64(404), entity.RestaurantHidden).
		Return(repository.ErrRestaurantNotFound)

	err := fx.service.UpdateRestaurantStatus(ctx, 404, "hidden")
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestAdminService_Broadcast_AllActiveUsers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		ListActiveIDs(ctx).
		Return([]int64{1, 2, 3}, nil)

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(ns []*entity.UserNotification) bool {
			return len(ns) == 3 && ns[0].Type == entity.NotificationAnnouncement
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().
		ListActiveTokensByUsers(ctx, []int64{1, 2, 3}).
		Return([]string{"tok-1", "tok-2"}, nil)

	fx.pushService.EXPECT().
		SendBatch(ctx, []string{"tok-1", "tok-2"}, "維護公告", "今晚十點維護", mock.AnythingOfType("map[string]string")).
		Return(2, 0, nil, nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	result, err := fx.service.Broadcast(ctx, 9, &usecase.BroadcastInput{
		Title:   "維護公告",
		Content: "今晚十點維護",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Recipients)
	assert.Equal(t, 2, result.PushSent)
	assert.Zero(t, result.PushFailed)
}

func TestAdminService_Broadcast_ExplicitTargetsAndInvalidTokenCleanup(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(ns []*entity.UserNotification) bool {
			return len(ns) == 2
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().
		ListActiveTokensByUsers(ctx, []int64{5, 6}).
		Return([]string{"tok-dead", "tok-ok"}, nil)

	fx.pushService.EXPECT().
		SendBatch(ctx, []string{"tok-dead", "tok-ok"}, "促銷", "", mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"tok-dead"}, nil)

	fx.deviceRepo.EXPECT().
		Deactivate(ctx, "tok-dead").
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	result, err := fx.service.Broadcast(ctx, 9, &usecase.BroadcastInput{
		Type:    "promotion",
		Title:   "促銷",
		UserIDs: []int64{5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 1, result.PushSent)
	assert.Equal(t, 1, result.PushFailed)
}

func TestAdminService_Broadcast_RequiresTitle(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.Broadcast(context.Background(), 9, &usecase.BroadcastInput{
		Content: "no title",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_Broadcast_PushFailureDoesNotFailBroadcast(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.UserNotification")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		ListActiveTokensByUsers(ctx, []int64{5}).
		Return([]string{"tok-1"}, nil)

	fx.pushService.EXPECT().
		SendBatch(ctx, []string{"tok-1"}, "公告", "", mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, errors.New("fcm unreachable"))

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	result, err := fx.service.Broadcast(ctx, 9, &usecase.BroadcastInput{
		Title:   "公告",
		UserIDs: []int64{5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
	assert.Zero(t, result.PushSent)
}

func TestAdminService_NotifyNewRestaurant_AtMostOnce(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		HasNewRestaurantBroadcast(ctx, int64(1)).
		Return(true, nil)

	result, err := fx.service.NotifyNewRestaurant(ctx, 9, 1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastAlreadySent)
}

func TestAdminService_NotifyNewRestaurant_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	restaurant := &entity.Restaurant{
		ID:     1,
		NameZh: "素食坊",
		State:  "Selangor",
		Area:   "Petaling Jaya",
	}

	fx.notificationRepo.EXPECT().
		HasNewRestaurantBroadcast(ctx, int64(1)).
		Return(false, nil)

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(restaurant, nil)

	fx.userRepo.EXPECT().
		ListActiveIDs(ctx).
		Return([]int64{1, 2}, nil)

	fx.notificationRepo.EXPECT().
		RecordNewRestaurantBroadcast(ctx, int64(1)).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(ns []*entity.UserNotification) bool {
			return len(ns) == 2 && ns[0].Type == entity.NotificationNewRestaurant
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().
		ListActiveTokensByUsers(ctx, []int64{1, 2}).
		Return(nil, nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.MatchedBy(func(e *service.BroadcastEvent) bool {
			return e.RestaurantID == 1 && e.SentBy == 9 && e.Recipients == 2
		})).
		Return(nil)

	result, err := fx.service.NotifyNewRestaurant(ctx, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
}

func TestAdminService_NotifyNewRestaurant_LostRaceOnRecord(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		HasNewRestaurantBroadcast(ctx, int64(1)).
		Return(false, nil)

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Restaurant{ID: 1, NameZh: "素食坊", State: "Selangor"}, nil)

	fx.userRepo.EXPECT().
		ListActiveIDs(ctx).
		Return([]int64{1}, nil)

	// A concurrent admin recorded the broadcast first; the unique index wins.
	fx.notificationRepo.EXPECT().
		RecordNewRestaurantBroadcast(ctx, int64(1)).
		Return(repository.ErrBroadcastAlreadyRecorded)

	result, err := fx.service.NotifyNewRestaurant(ctx, 9, 1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastAlreadySent)
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().CountAll(ctx).Return(int64(120), nil)
	fx.restaurantRepo.EXPECT().CountByStatus(ctx, entity.RestaurantPending).Return(int64(4), nil)
	fx.restaurantRepo.EXPECT().CountByStatus(ctx, entity.RestaurantHidden).Return(int64(2), nil)
	fx.userRepo.EXPECT().CountAll(ctx).Return(int64(900), nil)
	fx.restaurantRepo.EXPECT().CountByState(ctx, "MY").Return([]entity.StatCount{{Name: "Selangor", Count: 40}}, nil)
	fx.restaurantRepo.EXPECT().CountByCategory(ctx).Return([]entity.StatCount{{Name: "vegan", Count: 25}}, nil)
	fx.restaurantRepo.EXPECT().CountByVerification(ctx).Return([]entity.StatCount{{Name: "verified", Count: 80}}, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalRestaurants)
	assert.Equal(t, int64(4), stats.PendingCount)
	assert.Equal(t, int64(2), stats.HiddenCount)
	assert.Equal(t, int64(900), stats.TotalUsers)
	assert.Len(t, stats.ByState, 1)
}
