package handler

import (
	"net/http"

	"goveggie/internal/delivery/http/response"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for static directory data handlers.
type DirectoryHandler struct {
	uc usecase.DirectoryUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// ListStates returns all states with area counts.
func (h *DirectoryHandler) ListStates(c echo.Context) error {
	states, err := h.uc.ListStates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, states, "")
}

// ListAreas returns the areas under a state.
func (h *DirectoryHandler) ListAreas(c echo.Context) error {
	stateID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	areas, err := h.uc.ListAreas(c.Request().Context(), stateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, areas, "")
}

// ListTags returns the active filter tags, optionally one type only.
func (h *DirectoryHandler) ListTags(c echo.Context) error {
	tags, err := h.uc.ListTags(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "")
}

// ListNotices returns the active in-app bulletins.
func (h *DirectoryHandler) ListNotices(c echo.Context) error {
	notices, err := h.uc.ListNotices(c.Request().Context(), c.QueryParam("type"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notices, "")
}
