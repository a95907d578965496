// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationBatchSize bounds each INSERT during a broadcast fan-out so a
// directory-wide broadcast never produces one oversized statement.
const notificationBatchSize = 500

// notificationRepository implements the repository.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateBatch persists notifications for many users in batches.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.UserNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.UserNotificationModel, 0, len(notifications))
	for _, n := range notifications {
		models = append(models, fromNotificationDomain(n))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(models, notificationBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	return nil
}

// ListByUser returns a page of the user's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int, unreadOnly bool) ([]*entity.UserNotification, error) {
	var models []*model.UserNotificationModel

	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.UserNotification, 0, len(models))
	for _, m := range models {
		notifications = append(notifications, toNotificationDomain(m))
	}

	return notifications, nil
}

// CountByUser returns the total and unread counts for a user.
func (repo *notificationRepository) CountByUser(ctx context.Context, userID int64) (int64, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count notifications")
	}

	var unread int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return total, unread, nil
}

// MarkRead flags a single notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]any{
			"is_read": true,
			"read_at": now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification for the user.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": now,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// HasNewRestaurantBroadcast reports whether a new-restaurant broadcast was
// already sent for the restaurant.
func (repo *notificationRepository) HasNewRestaurantBroadcast(ctx context.Context, restaurantID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NewRestaurantBroadcastModel{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check broadcast record")
	}

	return count > 0, nil
}

// RecordNewRestaurantBroadcast records the dedupe row. The unique index on
// restaurant_id makes concurrent broadcasts collapse to one.
func (repo *notificationRepository) RecordNewRestaurantBroadcast(ctx context.Context, restaurantID int64) error {
	record := &model.NewRestaurantBroadcastModel{RestaurantID: restaurantID}

	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBroadcastAlreadyRecorded
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record broadcast")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM UserNotificationModel to a domain entity.
func toNotificationDomain(data *model.UserNotificationModel) *entity.UserNotification {
	if data == nil {
		return nil
	}

	return &entity.UserNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Title:     data.Title,
		Content:   data.Content,
		Payload:   data.Payload,
		IsRead:    data.IsRead,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM UserNotificationModel.
func fromNotificationDomain(data *entity.UserNotification) *model.UserNotificationModel {
	if data == nil {
		return nil
	}

	return &model.UserNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Title:     data.Title,
		Content:   data.Content,
		Payload:   data.Payload,
		IsRead:    data.IsRead,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
