// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert registers a device token. A token already held by another user is
// moved to the new owner and reactivated, so a shared device always pushes
// to whoever logged in last.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "device_type", "app_version", "is_active", "updated_at",
			}),
		}).
		Create(deviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.IsActive = true
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Deactivate marks the token inactive after the push provider reports it invalid.
func (repo *deviceRepository) Deactivate(ctx context.Context, deviceToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("device_token = ?", deviceToken).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ListActiveTokensByUsers returns active device tokens for the given users.
func (repo *deviceRepository) ListActiveTokensByUsers(ctx context.Context, userIDs []int64) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var tokens []string
	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Pluck("device_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active device tokens")
	}

	return tokens, nil
}

// --- Mapper Functions ---

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceToken: data.DeviceToken,
		DeviceType:  string(data.DeviceType),
		AppVersion:  data.AppVersion,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
