// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/response"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// SocialLogin handles the social login request.
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	var input *usecase.SocialLoginInput
	// Echo's binder leaves the pointer nil on an empty body.
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	result, err := h.uc.SocialLogin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// GetProfile returns the authenticated user's profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile modifies the authenticated user's profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.ProfileUpdateInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

type bindPhoneRequest struct {
	Phone string `json:"phone"`
}

// BindPhone attaches a phone number to the authenticated account.
func (h *AuthHandler) BindPhone(c echo.Context) error {
	var req bindPhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := h.uc.BindPhone(c.Request().Context(), middleware.CurrentUserID(c), req.Phone); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone bound")
}
