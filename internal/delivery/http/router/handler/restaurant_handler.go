package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"savor/internal/delivery/http/response"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for catalog browsing handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated catalog listing request.
func (h *RestaurantHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	input := &usecase.ListRestaurantsInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Restaurants retrieved successfully")
}

// Details handles the single restaurant request.
func (h *RestaurantHandler) Details(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	details, err := h.uc.Details(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Restaurant retrieved successfully")
}

// Menu handles the restaurant menu request.
func (h *RestaurantHandler) Menu(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	menu, err := h.uc.Menu(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}
