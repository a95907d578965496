package handler

import (
	"net/http"
	"strconv"
	"strings"

	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/response"
	"goveggie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for public restaurant handlers.
type RestaurantHandler struct {
	uc usecase.RestaurantUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// Search handles the filtered restaurant search.
func (h *RestaurantHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Keyword:    c.QueryParam("search"),
		Area:       c.QueryParam("area"),
		TimeSlot:   c.QueryParam("time_slot"),
		Sort:       c.QueryParam("sort_by"),
		StateID:    queryInt64(c, "state_id"),
		PriceLevel: queryInt(c, "price_level"),
		PriceMin:   queryInt(c, "price_min"),
		PriceMax:   queryInt(c, "price_max"),
		Lat:        queryFloat(c, "lat"),
		Lng:        queryFloat(c, "lng"),
		RadiusM:    queryFloat(c, "radius"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
		IsOpenNow:  queryBool(c, "is_open_now"),
		UserID:     middleware.CurrentUserID(c),
	}

	if raw := c.QueryParam("recommended"); raw != "" {
		recommended := raw == "true" || raw == "1"
		input.Recommended = &recommended
	}
	if raw := c.QueryParam("tags"); raw != "" {
		input.Tags = splitCSV(raw)
	}

	result, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetByID handles the restaurant detail request.
func (h *RestaurantHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.uc.GetByID(c.Request().Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Suggest handles search autocomplete.
func (h *RestaurantHandler) Suggest(c echo.Context) error {
	suggestions, err := h.uc.Suggest(c.Request().Context(), c.QueryParam("q"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// Filters returns the static filter option metadata for the search UI.
func (h *RestaurantHandler) Filters(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.FilterMetadata(), "")
}

// ShareQR serves the share QR code as a PNG image.
func (h *RestaurantHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))

	return v
}

func queryInt64(c echo.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.QueryParam(name), 10, 64)

	return v
}

func queryFloat(c echo.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.QueryParam(name), 64)

	return v
}

func queryBool(c echo.Context, name string) bool {
	raw := c.QueryParam(name)

	return raw == "true" || raw == "1"
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}

	return values
}
