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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByProvider retrieves a user bound to the given social identity.
func (repo *userRepository) FindByProvider(ctx context.Context, provider entity.SocialProvider, providerID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("auth_provider = ? AND auth_provider_id = ?", string(provider), providerID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by provider identity")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("provider identity already bound")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhone
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// LinkProvider binds a social identity to an existing account found by email.
func (repo *userRepository) LinkProvider(ctx context.Context, userID int64, provider entity.SocialProvider, providerID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"auth_provider":    string(provider),
			"auth_provider_id": providerID,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("provider identity already bound")
		}

		return errors.Wrap(result.Error, "failed to link provider")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// TouchLastLogin stamps the last login time for a user.
func (repo *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("last_login_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch last login")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePhone binds a phone number to a user. The unique index on the phone
// column enforces one account per number.
func (repo *userRepository) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("phone", phone)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePhone
		}

		return errors.Wrap(result.Error, "failed to update phone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListActiveIDs returns the IDs of all active users, for broadcast fan-out.
func (repo *userRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active user ids")
	}

	return ids, nil
}

// CountAll returns the total number of accounts.
func (repo *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var phone string
	if data.Phone != nil {
		phone = *data.Phone
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		AvatarURL:      data.AvatarURL,
		Phone:          phone,
		AuthProvider:   entity.SocialProvider(data.AuthProvider),
		AuthProviderID: data.AuthProviderID,
		Role:           entity.Role(data.Role),
		IsActive:       data.IsActive,
		Preferences:    data.Preferences,
		LastLoginAt:    data.LastLoginAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var phone *string
	if data.Phone != "" {
		phone = &data.Phone
	}

	return &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		AvatarURL:      data.AvatarURL,
		Phone:          phone,
		AuthProvider:   string(data.AuthProvider),
		AuthProviderID: data.AuthProviderID,
		Role:           data.Role.String(),
		IsActive:       data.IsActive,
		Preferences:    data.Preferences,
		LastLoginAt:    data.LastLoginAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
