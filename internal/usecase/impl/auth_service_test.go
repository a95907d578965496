package impl

import (
	"context"
	"testing"

	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	mockRepo "goveggie/internal/mocks/repository"
	mockService "goveggie/internal/mocks/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	txManager := &mockRepo.StubTransactionManager{Users: userRepo}
	service := NewAuthService(newTestConfig(), userRepo, txManager, tokenService, newDiscardLogger())

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestAuthService_SocialLogin_ExistingUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             42,
		Email:          "eater@example.com",
		AuthProvider:   entity.ProviderGoogle,
		AuthProviderID: "google-sub-1",
		Role:           entity.RoleUser,
		IsActive:       true,
	}

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderGoogle, "google-sub-1").
		Return(user, nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, int64(42)).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(int64(42), entity.RoleUser).
		Return("signed-token", nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
		Email:      "eater@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.False(t, result.IsNew)
	assert.True(t, result.NeedPhone)
	assert.Equal(t, int64(42), result.User.ID)
}

func TestAuthService_SocialLogin_BoundPhoneClearsNeedPhone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       42,
		Phone:    "+60123456789",
		Role:     entity.RoleUser,
		IsActive: true,
	}

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderGoogle, "google-sub-1").
		Return(user, nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, int64(42)).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(int64(42), entity.RoleUser).
		Return("signed-token", nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	})
	require.NoError(t, err)
	assert.False(t, result.NeedPhone)
}

func TestAuthService_SocialLogin_ResolveFailureRollsBack(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	txManager := &mockRepo.StubTransactionManager{
		Users: userRepo,
		Err:   errors.New("transaction aborted"),
	}
	service := NewAuthService(newTestConfig(), userRepo, txManager, tokenService, newDiscardLogger())

	result, err := service.SocialLogin(context.Background(), &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	})
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "transaction aborted")
}

func TestAuthService_SocialLogin_LinksByEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:             7,
		Email:          "eater@example.com",
		AuthProvider:   entity.ProviderGoogle,
		AuthProviderID: "google-sub-1",
		Role:           entity.RoleUser,
		IsActive:       true,
	}

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderApple, "apple-sub-9").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "eater@example.com").
		Return(existing, nil)

	fx.userRepo.EXPECT().
		LinkProvider(ctx, int64(7), entity.ProviderApple, "apple-sub-9").
		Return(nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, int64(7)).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(int64(7), entity.RoleUser).
		Return("signed-token", nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderApple,
		ProviderID: "apple-sub-9",
		Email:      "eater@example.com",
	})
	require.NoError(t, err)
	assert.False(t, result.IsNew)
	assert.Equal(t, entity.ProviderApple, result.User.AuthProvider)
	assert.Equal(t, "apple-sub-9", result.User.AuthProviderID)
}

func TestAuthService_SocialLogin_CreatesNewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderFacebook, "fb-123").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*entity.User)
			created.ID = 99
		}).
		Return(nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, int64(99)).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(int64(99), entity.RoleUser).
		Return("signed-token", nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderFacebook,
		ProviderID: "fb-123",
		Email:      "new@example.com",
		Name:       "New Eater",
	})
	require.NoError(t, err)
	assert.True(t, result.IsNew)
	assert.True(t, result.NeedPhone)
	assert.Equal(t, entity.RoleUser, result.User.Role)
	assert.True(t, result.User.IsActive)
}

func TestAuthService_SocialLogin_AdminAllowlist(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderGoogle, "google-admin").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "Admin@GoVeggie.app").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, mock.AnythingOfType("int64")).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("int64"), entity.RoleAdmin).
		Return("signed-token", nil)

	// The allowlist comparison is case-insensitive.
	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-admin",
		Email:      "Admin@GoVeggie.app",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, result.User.Role)
}

func TestAuthService_SocialLogin_InactiveUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       42,
		Role:     entity.RoleUser,
		IsActive: false,
	}

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderGoogle, "google-sub-1").
		Return(user, nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_SocialLogin_UnsupportedProvider(t *testing.T) {
	fx := createTestAuthService(t)

	result, err := fx.service.SocialLogin(context.Background(), &usecase.SocialLoginInput{
		Provider:   "myspace",
		ProviderID: "whatever",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestAuthService_SocialLogin_MissingProviderID(t *testing.T) {
	fx := createTestAuthService(t)

	result, err := fx.service.SocialLogin(context.Background(), &usecase.SocialLoginInput{
		Provider: entity.ProviderGoogle,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SocialLogin_TouchLastLoginFailureIsNonFatal(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Role: entity.RoleUser, IsActive: true}

	fx.userRepo.EXPECT().
		FindByProvider(ctx, entity.ProviderGoogle, "google-sub-1").
		Return(user, nil)

	fx.userRepo.EXPECT().
		TouchLastLogin(ctx, int64(42)).
		Return(errors.New("database error"))

	fx.tokenService.EXPECT().
		GenerateToken(int64(42), entity.RoleUser).
		Return("signed-token", nil)

	result, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{
		Provider:   entity.ProviderGoogle,
		ProviderID: "google-sub-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, 404)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:        42,
		Name:      "Old Name",
		AvatarURL: "https://cdn.example.com/old.png",
		IsActive:  true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 42, &usecase.ProfileUpdateInput{
		Name: "New Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "https://cdn.example.com/old.png", updated.AvatarURL)
}

func TestAuthService_BindPhone_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		UpdatePhone(ctx, int64(42), "+60123456789").
		Return(repository.ErrDuplicatePhone)

	err := fx.service.BindPhone(ctx, 42, "+60123456789")
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyLinked)
}

func TestAuthService_BindPhone_EmptyPhone(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.BindPhone(context.Background(), 42, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
