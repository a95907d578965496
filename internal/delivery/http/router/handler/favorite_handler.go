package handler

import (
	"net/http"

	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/response"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorites handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// Toggle flips the favorite state for a restaurant.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		return err
	}

	favorited, err := h.uc.Toggle(c.Request().Context(), middleware.CurrentUserID(c), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favorited}, "")
}

// List returns the authenticated user's favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.uc.List(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}
