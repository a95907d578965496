package usecase

import (
	"context"

	"goveggie/internal/domain/entity"
)

// NotificationPage is one page of notifications with counts.
type NotificationPage struct {
	Notifications []*entity.UserNotification `json:"notifications"`
	Total         int64                      `json:"total"`
	UnreadCount   int64                      `json:"unread_count"`
	Page          int                        `json:"page"`
	Limit         int                        `json:"limit"`
}

// DeviceInput carries a push registration from the mobile client.
type DeviceInput struct {
	DeviceToken string `json:"device_token"`
	DeviceType  string `json:"device_type"`
	AppVersion  string `json:"app_version"`
}

// NotificationUsecase defines the interface for user notification use cases.
type NotificationUsecase interface {
	// List returns a page of the user's notifications plus the unread count.
	// When unreadOnly is set only unread rows are paged and counted.
	List(ctx context.Context, userID int64, page, limit int, unreadOnly bool) (*NotificationPage, error)

	// UnreadCount returns the caller's unread notification count.
	UnreadCount(ctx context.Context, userID int64) (int64, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, userID, notificationID int64) error

	// MarkAllRead flags every unread notification and reports how many changed.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	// RegisterDevice upserts a push token registration.
	RegisterDevice(ctx context.Context, userID int64, input *DeviceInput) (*entity.UserDevice, error)
}
