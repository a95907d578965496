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

// AdminHandler holds dependencies for moderation and broadcast handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListRestaurants returns a moderation page across all statuses.
func (h *AdminHandler) ListRestaurants(c echo.Context) error {
	input := &usecase.AdminListInput{
		Keyword:            c.QueryParam("keyword"),
		Status:             c.QueryParam("status"),
		VerificationStatus: c.QueryParam("verification_status"),
		State:              c.QueryParam("state"),
		Page:               queryInt(c, "page"),
		Limit:              queryInt(c, "limit"),
	}

	result, err := h.uc.ListRestaurants(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CreateRestaurant adds a listing.
func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	var input *usecase.RestaurantInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	restaurant, err := h.uc.CreateRestaurant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created")
}

// UpdateRestaurant replaces the writable fields of a listing.
func (h *AdminHandler) UpdateRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.RestaurantInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	restaurant, err := h.uc.UpdateRestaurant(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated")
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateRestaurantStatus changes the moderation status of a listing.
func (h *AdminHandler) UpdateRestaurantStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.UpdateRestaurantStatus(c.Request().Context(), id, req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// Broadcast fans a notification out to the target users.
func (h *AdminHandler) Broadcast(c echo.Context) error {
	var input *usecase.BroadcastInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	adminID := middleware.CurrentUserID(c)
	result, err := h.uc.Broadcast(c.Request().Context(), adminID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("broadcast sent",
		slog.Int64("admin_id", adminID),
		slog.Int("recipients", result.Recipients),
	)

	return response.Success(c, http.StatusOK, result, "Broadcast sent")
}

// NotifyNewRestaurant broadcasts a new-restaurant notification at most once.
func (h *AdminHandler) NotifyNewRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.NotifyNewRestaurant(c.Request().Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Broadcast sent")
}

// Stats returns the dashboard aggregates.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
