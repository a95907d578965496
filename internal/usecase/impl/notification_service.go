package impl

import (
	"context"
	"strings"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
)

const defaultNotificationLimit = 20

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

// List returns a page of the user's notifications plus the unread count.
func (s *notificationService) List(ctx context.Context, userID int64, page, limit int, unreadOnly bool) (*usecase.NotificationPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, limit, (page-1)*limit, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	total, unread, err := s.notificationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	// With the unread filter the page total is the unread total.
	if unreadOnly {
		total = unread
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
	}, nil
}

// UnreadCount returns the caller's unread notification count.
func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	_, unread, err := s.notificationRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}

	return unread, nil
}

// MarkRead flags one notification as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags every unread notification and reports how many changed.
func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	return count, nil
}

// RegisterDevice upserts a push token registration.
func (s *notificationService) RegisterDevice(ctx context.Context, userID int64, input *usecase.DeviceInput) (*entity.UserDevice, error) {
	token := strings.TrimSpace(input.DeviceToken)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_token is required")
	}

	deviceType := entity.DeviceType(strings.ToLower(strings.TrimSpace(input.DeviceType)))
	if !deviceType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_type must be ios, android, or huawei")
	}

	device := &entity.UserDevice{
		UserID:      userID,
		DeviceToken: token,
		DeviceType:  deviceType,
		AppVersion:  input.AppVersion,
		IsActive:    true,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}
