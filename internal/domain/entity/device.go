// Package entity contains the core business objects of the project.
package entity

import "time"

// DeviceType identifies the push-token platform.
type DeviceType string

const (
	DeviceIOS     DeviceType = "ios"
	DeviceAndroid DeviceType = "android"
	DeviceHuawei  DeviceType = "huawei"
)

// IsValid checks if the DeviceType is a valid value.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceIOS, DeviceAndroid, DeviceHuawei:
		return true
	default:
		return false
	}
}

// UserDevice stores a push registration. The device token is globally unique;
// re-registration moves the token to the latest owner.
type UserDevice struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	DeviceToken string     `json:"device_token"`
	DeviceType  DeviceType `json:"device_type"`
	AppVersion  string     `json:"app_version"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
