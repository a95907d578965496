package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"goveggie/config"
	deliverycontext "goveggie/internal/delivery/context"
	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/domain/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type adminService struct {
	restaurantRepo   repository.RestaurantRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	txManager        repository.TransactionManager
	pushService      service.PushService
	eventPublisher   service.EventPublisher
	statsCountry     string
	logger           *slog.Logger
}

// NewAdminService creates a new admin service instance.
func NewAdminService(
	cfg *config.Config,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	txManager repository.TransactionManager,
	pushService service.PushService,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	statsCountry := ""
	if cfg.Stats != nil {
		statsCountry = cfg.Stats.Country
	}

	return &adminService{
		restaurantRepo:   restaurantRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		txManager:        txManager,
		pushService:      pushService,
		eventPublisher:   eventPublisher,
		statsCountry:     statsCountry,
		logger:           logger,
	}
}

// ListRestaurants returns a moderation page across all statuses.
func (s *adminService) ListRestaurants(ctx context.Context, input *usecase.AdminListInput) (*usecase.AdminListResult, error) {
	query := &repository.AdminRestaurantQuery{
		Keyword:            input.Keyword,
		Status:             entity.RestaurantStatus(input.Status),
		VerificationStatus: input.VerificationStatus,
		StateName:          input.State,
		Page:               max(input.Page, 1),
		Limit:              input.Limit,
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	restaurants, total, err := s.restaurantRepo.AdminList(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return &usecase.AdminListResult{
		Restaurants: restaurants,
		Total:       total,
		Page:        query.Page,
		Limit:       query.Limit,
	}, nil
}

// CreateRestaurant adds a listing.
func (s *adminService) CreateRestaurant(ctx context.Context, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant := restaurantFromInput(input)
	if restaurant.NameZh == "" && restaurant.NameEn == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a restaurant name is required")
	}
	if restaurant.Status == "" {
		restaurant.Status = entity.RestaurantPending
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant created",
		slog.Int64("restaurant_id", restaurant.ID),
		slog.String("name", restaurant.DisplayName()),
	)

	return restaurant, nil
}

// UpdateRestaurant replaces the writable fields of a listing.
func (s *adminService) UpdateRestaurant(ctx context.Context, id int64, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	existing, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	restaurant := restaurantFromInput(input)
	restaurant.ID = existing.ID
	restaurant.CreatedAt = existing.CreatedAt
	if restaurant.Status == "" {
		restaurant.Status = existing.Status
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// UpdateRestaurantStatus changes the moderation status of a listing.
func (s *adminService) UpdateRestaurantStatus(ctx context.Context, id int64, status string) error {
	parsed := entity.RestaurantStatus(strings.ToLower(strings.TrimSpace(status)))
	switch parsed {
	case entity.RestaurantActive, entity.RestaurantPending, entity.RestaurantHidden:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("status must be active, pending, or hidden")
	}

	if err := s.restaurantRepo.UpdateStatus(ctx, id, parsed); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to update restaurant status")
	}

	return nil
}

// Broadcast fans a notification out to the target users. The notification
// rows are written in one transaction; pushes and the audit event follow
// best-effort after commit.
func (s *adminService) Broadcast(ctx context.Context, adminID int64, input *usecase.BroadcastInput) (*usecase.BroadcastResult, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	notificationType := entity.NotificationType(input.Type).Normalize()

	targetIDs := input.UserIDs
	if len(targetIDs) == 0 {
		ids, err := s.userRepo.ListActiveIDs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list broadcast targets")
		}
		targetIDs = ids
	}

	payload, err := buildPayload(input.Data, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewNotificationRepository().CreateBatch(ctx, buildNotifications(targetIDs, notificationType, input.Title, input.Content, payload))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist broadcast")
	}

	result := &usecase.BroadcastResult{Recipients: len(targetIDs)}
	s.sendPushes(ctx, targetIDs, input.Title, input.Content, notificationType, input.RestaurantID, result)
	s.publishAudit(ctx, adminID, notificationType, input.Title, input.RestaurantID, result)

	return result, nil
}

// NotifyNewRestaurant broadcasts a new-restaurant notification at most once
// per restaurant. The dedupe record and the notification rows commit
// together, so a crash cannot leave the broadcast half-sent twice.
func (s *adminService) NotifyNewRestaurant(ctx context.Context, adminID, restaurantID int64) (*usecase.BroadcastResult, error) {
	sent, err := s.notificationRepo.HasNewRestaurantBroadcast(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check broadcast record")
	}
	if sent {
		return nil, domainerrors.ErrBroadcastAlreadySent
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	targetIDs, err := s.userRepo.ListActiveIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcast targets")
	}

	title := "新餐廳上線：" + restaurant.DisplayName()
	content := restaurant.DisplayName() + " 已在 " + restaurant.LocationLabel() + " 上線，快來看看！"

	payload, err := buildPayload(nil, restaurantID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		notificationRepo := factory.NewNotificationRepository()

		if err := notificationRepo.RecordNewRestaurantBroadcast(ctx, restaurantID); err != nil {
			return err
		}

		return notificationRepo.CreateBatch(ctx, buildNotifications(targetIDs, entity.NotificationNewRestaurant, title, content, payload))
	})
	if err != nil {
		if errors.Is(err, repository.ErrBroadcastAlreadyRecorded) {
			return nil, domainerrors.ErrBroadcastAlreadySent
		}

		return nil, errors.Wrap(err, "failed to persist broadcast")
	}

	result := &usecase.BroadcastResult{Recipients: len(targetIDs)}
	s.sendPushes(ctx, targetIDs, title, content, entity.NotificationNewRestaurant, restaurantID, result)
	s.publishAudit(ctx, adminID, entity.NotificationNewRestaurant, title, restaurantID, result)

	return result, nil
}

// Stats returns the dashboard aggregates.
func (s *adminService) Stats(ctx context.Context) (*entity.AdminStats, error) {
	total, err := s.restaurantRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants")
	}

	pending, err := s.restaurantRepo.CountByStatus(ctx, entity.RestaurantPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending restaurants")
	}

	hidden, err := s.restaurantRepo.CountByStatus(ctx, entity.RestaurantHidden)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hidden restaurants")
	}

	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	byState, err := s.restaurantRepo.CountByState(ctx, s.statsCountry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate by state")
	}

	byCategory, err := s.restaurantRepo.CountByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate by category")
	}

	byVerification, err := s.restaurantRepo.CountByVerification(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate by verification")
	}

	return &entity.AdminStats{
		TotalRestaurants: total,
		PendingCount:     pending,
		HiddenCount:      hidden,
		TotalUsers:       totalUsers,
		ByState:          byState,
		ByCategory:       byCategory,
		ByVerification:   byVerification,
	}, nil
}

// sendPushes delivers the broadcast to active devices. Failures never fail
// the broadcast; invalid tokens are deactivated so they stop accumulating.
func (s *adminService) sendPushes(ctx context.Context, targetIDs []int64, title, content string, notificationType entity.NotificationType, restaurantID int64, result *usecase.BroadcastResult) {
	tokens, err := s.deviceRepo.ListActiveTokensByUsers(ctx, targetIDs)
	if err != nil {
		s.logger.Warn("failed to list push tokens", slog.String("error", err.Error()))

		return
	}
	if len(tokens) == 0 {
		return
	}

	data := map[string]string{"type": string(notificationType)}
	if restaurantID > 0 {
		data["restaurant_id"] = strconv.FormatInt(restaurantID, 10)
	}

	sent, failed, invalidTokens, err := s.pushService.SendBatch(ctx, tokens, title, content, data)
	if err != nil {
		s.logger.Warn("push delivery failed", slog.String("error", err.Error()))

		return
	}

	result.PushSent = sent
	result.PushFailed = failed

	for _, token := range invalidTokens {
		if err := s.deviceRepo.Deactivate(ctx, token); err != nil {
			s.logger.Warn("failed to deactivate invalid token", slog.String("error", err.Error()))
		}
	}
}

// publishAudit emits the broadcast audit event, best-effort.
func (s *adminService) publishAudit(ctx context.Context, adminID int64, notificationType entity.NotificationType, title string, restaurantID int64, result *usecase.BroadcastResult) {
	event := &service.BroadcastEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         string(notificationType),
		Title:        title,
		RestaurantID: restaurantID,
		SentBy:       adminID,
		Recipients:   result.Recipients,
		PushSent:     result.PushSent,
		PushFailed:   result.PushFailed,
	}

	if err := s.eventPublisher.PublishBroadcastEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish broadcast event", slog.String("error", err.Error()))
	}
}

func buildNotifications(targetIDs []int64, notificationType entity.NotificationType, title, content string, payload datatypes.JSON) []*entity.UserNotification {
	notifications := make([]*entity.UserNotification, 0, len(targetIDs))
	for _, userID := range targetIDs {
		notifications = append(notifications, &entity.UserNotification{
			UserID:  userID,
			Type:    notificationType,
			Title:   title,
			Content: content,
			Payload: payload,
		})
	}

	return notifications
}

func buildPayload(data map[string]any, restaurantID int64) (datatypes.JSON, error) {
	if data == nil && restaurantID <= 0 {
		return nil, nil
	}

	merged := make(map[string]any, len(data)+1)
	for k, v := range data {
		merged[k] = v
	}
	if restaurantID > 0 {
		merged["restaurant_id"] = restaurantID
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payload")
	}

	return datatypes.JSON(raw), nil
}

func restaurantFromInput(input *usecase.RestaurantInput) *entity.Restaurant {
	return &entity.Restaurant{
		NameZh:             input.NameZh,
		NameEn:             input.NameEn,
		Address:            input.Address,
		State:              input.State,
		Area:               input.Area,
		Country:            input.Country,
		Lat:                input.Lat,
		Lng:                input.Lng,
		PriceLevel:         input.PriceLevel,
		Recommended:        input.Recommended,
		RecommendedDishes:  input.RecommendedDishes,
		Description:        input.Description,
		Phones:             input.Phones,
		TimeSlots:          input.TimeSlots,
		RestDays:           input.RestDays,
		BusinessHours:      input.BusinessHours,
		Photos:             input.Photos,
		CoverPhoto:         input.CoverPhoto,
		VegetarianType:     input.VegetarianType,
		Status:             entity.RestaurantStatus(input.Status),
		VerificationStatus: input.VerificationStatus,
	}
}
