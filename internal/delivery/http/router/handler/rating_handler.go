package handler

import (
	"log/slog"
	"net/http"

	"savor/internal/delivery/http/response"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating-related handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitRatingRequest struct {
	Score   float64 `json:"score" validate:"min=0,max=5"`
	Comment string  `json:"comment"`
}

// Submit handles the rating submission request for a restaurant.
// The author is the authenticated user.
func (h *RatingHandler) Submit(c echo.Context) error {
	authorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	var req *submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.SubmitRatingInput{
		AuthorID:     authorID,
		RestaurantID: restaurantID,
		Score:        req.Score,
		Comment:      req.Comment,
	}
	output, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Rating submitted successfully")
}

// List handles the request to list a restaurant's ratings.
func (h *RatingHandler) List(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID")
	}

	ratings, err := h.uc.ListForRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}
