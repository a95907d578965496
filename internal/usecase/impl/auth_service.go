// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"goveggie/config"
	"goveggie/internal/domain/entity"
	domainerrors "goveggie/internal/domain/errors"
	"goveggie/internal/domain/repository"
	"goveggie/internal/domain/service"
	"goveggie/internal/usecase"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type authService struct {
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
	tokenService service.TokenService
	adminEmails  map[string]struct{}
	logger       *slog.Logger
}

// NewAuthService creates a new auth service instance. Admin emails from
// config are granted the admin role on login.
func NewAuthService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	adminEmails := make(map[string]struct{})
	if cfg.Auth != nil {
		for _, email := range cfg.Auth.AdminEmails {
			adminEmails[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
		}
	}

	return &authService{
		userRepo:     userRepo,
		txManager:    txManager,
		tokenService: tokenService,
		adminEmails:  adminEmails,
		logger:       logger,
	}
}

// SocialLogin resolves or creates the account bound to the social identity
// and issues an access token.
func (s *authService) SocialLogin(ctx context.Context, input *usecase.SocialLoginInput) (*usecase.LoginResult, error) {
	if !input.Provider.IsValid() {
		return nil, domainerrors.ErrUnsupportedProvider
	}
	if input.ProviderID == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// Lookup, email backfill, and account creation run in one transaction so
	// two concurrent first logins for the same identity cannot both insert.
	var (
		user  *entity.User
		isNew bool
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var resolveErr error
		user, isNew, resolveErr = s.resolveUser(ctx, factory.NewUserRepository(), input)

		return resolveErr
	})
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrForbidden
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds when only the timestamp write failed.
		s.logger.Warn("failed to touch last login",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginResult{
		Token:     token,
		User:      user,
		IsNew:     isNew,
		NeedPhone: user.Phone == "",
	}, nil
}

// resolveUser finds the account for a social identity, links the identity to
// an existing account matched by email, or creates a fresh account. The
// caller supplies a transaction-bound repository.
func (s *authService) resolveUser(ctx context.Context, userRepo repository.UserRepository, input *usecase.SocialLoginInput) (*entity.User, bool, error) {
	user, err := userRepo.FindByProvider(ctx, input.Provider, input.ProviderID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by provider")
	}

	if input.Email != "" {
		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			if err := userRepo.LinkProvider(ctx, existing.ID, input.Provider, input.ProviderID); err != nil {
				return nil, false, errors.Wrap(err, "failed to link provider")
			}
			existing.AuthProvider = input.Provider
			existing.AuthProviderID = input.ProviderID

			return existing, false, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, errors.Wrap(err, "failed to find user by email")
		}
	}

	role := entity.RoleUser
	if _, ok := s.adminEmails[strings.ToLower(input.Email)]; ok && input.Email != "" {
		role = entity.RoleAdmin
	}

	newUser := &entity.User{
		Email:          input.Email,
		Name:           input.Name,
		AvatarURL:      input.AvatarURL,
		AuthProvider:   input.Provider,
		AuthProviderID: input.ProviderID,
		Role:           role,
		IsActive:       true,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, false, err
	}

	s.logger.Info("created account from social login",
		slog.Int64("user_id", newUser.ID),
		slog.String("provider", string(input.Provider)),
		slog.String("role", role.String()),
	)

	return newUser, true, nil
}

// GetProfile returns the account for the authenticated user.
func (s *authService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile modifies the mutable profile fields.
func (s *authService) UpdateProfile(ctx context.Context, userID int64, input *usecase.ProfileUpdateInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if len(input.Preferences) > 0 {
		user.Preferences = datatypes.JSON(input.Preferences)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// BindPhone attaches a phone number to the account.
func (s *authService) BindPhone(ctx context.Context, userID int64, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domainerrors.ErrValidationFailed.WithDetails("phone is required")
	}

	if err := s.userRepo.UpdatePhone(ctx, userID, phone); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePhone):
			return domainerrors.ErrPhoneAlreadyLinked
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		default:
			return errors.Wrap(err, "failed to bind phone")
		}
	}

	return nil
}
