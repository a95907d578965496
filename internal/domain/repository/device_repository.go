// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"goveggie/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device database operations.
type DeviceRepository interface {
	// Upsert registers a device token. A token already held by another user is
	// moved to the new owner and reactivated.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// Deactivate marks the token inactive, typically after the push provider
	// reports it invalid.
	Deactivate(ctx context.Context, deviceToken string) error

	// ListActiveTokensByUsers returns active device tokens for the given users.
	ListActiveTokensByUsers(ctx context.Context, userIDs []int64) ([]string, error)
}
