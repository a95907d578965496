// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrBroadcastAlreadyRecorded is returned when a new-restaurant broadcast
	// was already recorded for the restaurant.
	ErrBroadcastAlreadyRecorded = errors.New("broadcast already recorded")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateBatch persists notifications for many users in batches.
	CreateBatch(ctx context.Context, notifications []*entity.UserNotification) error

	// ListByUser returns a page of the user's notifications, newest first.
	// When unreadOnly is set only unread rows are returned.
	ListByUser(ctx context.Context, userID int64, limit, offset int, unreadOnly bool) ([]*entity.UserNotification, error)

	// CountByUser returns the total and unread counts for a user.
	CountByUser(ctx context.Context, userID int64) (total int64, unread int64, err error)

	// MarkRead flags a single notification as read. Returns
	// ErrNotificationNotFound when the row does not belong to the user.
	MarkRead(ctx context.Context, userID, notificationID int64) error

	// MarkAllRead flags every unread notification for the user.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	// HasNewRestaurantBroadcast reports whether a new-restaurant broadcast was
	// already sent for the restaurant.
	HasNewRestaurantBroadcast(ctx context.Context, restaurantID int64) (bool, error)

	// RecordNewRestaurantBroadcast records the dedupe row. Returns
	// ErrBroadcastAlreadyRecorded on a repeat.
	RecordNewRestaurantBroadcast(ctx context.Context, restaurantID int64) error
}
