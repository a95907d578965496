package model

import "time"

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications. The token
// is globally unique; re-registration moves it to the latest owner.
type UserDeviceModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	DeviceToken string `gorm:"type:varchar(512);not null;uniqueIndex"`
	DeviceType  string `gorm:"type:varchar(20);not null"`
	AppVersion  string `gorm:"type:varchar(50)"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
