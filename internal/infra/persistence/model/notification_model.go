package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserNotificationModel mirrors the 'user_notifications' table. One row per
// recipient; broadcasts fan out to many rows inside a single transaction.
type UserNotificationModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	UserID    int64          `gorm:"not null;index:idx_notifications_user_created"`
	Type      string         `gorm:"type:varchar(50);not null"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	IsRead    bool           `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationModel) TableName() string {
	return "user_notifications"
}

// NewRestaurantBroadcastModel mirrors the 'new_restaurant_broadcasts' table.
// The unique restaurant ID makes the new-restaurant broadcast at-most-once.
type NewRestaurantBroadcastModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64 `gorm:"not null;uniqueIndex"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewRestaurantBroadcastModel) TableName() string {
	return "new_restaurant_broadcasts"
}
