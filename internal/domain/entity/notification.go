// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationType tags a user notification.
type NotificationType string

const (
	NotificationNewRestaurant NotificationType = "new_restaurant"
	NotificationAnnouncement  NotificationType = "announcement"
	NotificationPromotion     NotificationType = "promotion"
	NotificationUpdate        NotificationType = "update"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationNewRestaurant, NotificationAnnouncement, NotificationPromotion, NotificationUpdate:
		return true
	default:
		return false
	}
}

// Normalize falls back to announcement for unknown type tags, matching the
// broadcast endpoint's lenient input handling.
func (t NotificationType) Normalize() NotificationType {
	if t.IsValid() {
		return t
	}

	return NotificationAnnouncement
}

// UserNotification is a per-user message created by an admin broadcast or a
// system event. Only the read state ever mutates after creation.
type UserNotification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Payload   datatypes.JSON   `json:"data,omitempty"`
	IsRead    bool             `json:"is_read"`
	ReadAt    *time.Time       `json:"read_at"`
	CreatedAt time.Time        `json:"created_at"`
}
