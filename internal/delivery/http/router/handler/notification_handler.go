package handler

import (
	"net/http"

	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/response"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns a page of the user's notifications with counts.
func (h *NotificationHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), middleware.CurrentUserID(c),
		queryInt(c, "page"), queryInt(c, "limit"), queryBool(c, "unread_only"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// UnreadCount returns the caller's unread notification count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread_count": count}, "")
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), middleware.CurrentUserID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead flags every unread notification.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	count, err := h.uc.MarkAllRead(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": count}, "")
}

// RegisterDevice upserts a push token registration.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	var input *usecase.DeviceInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}
