package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	domainerrors "savor/internal/domain/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
// Catalog reads are single queries, so no transaction manager is involved.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of active restaurants matching the optional search term.
func (srv *restaurantService) List(ctx context.Context, input *usecase.ListRestaurantsInput) (*usecase.ListRestaurantsOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	srv.log(ctx).Debug("Listing restaurants", "page", page, "limit", limit, "search", input.Search)

	restaurants, total, err := srv.restaurantRepo.List(ctx, page, limit, input.Search)
	if err != nil {
		srv.log(ctx).Error("Failed to list restaurants", "error", err)

		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	summaries := make([]*usecase.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summaries = append(summaries, &usecase.RestaurantSummary{
			ID:            restaurant.ID,
			Name:          restaurant.Name,
			Description:   restaurant.Description,
			DeliveryFee:   restaurant.DeliveryFee,
			AverageRating: restaurant.AverageRating,
		})
	}

	return &usecase.ListRestaurantsOutput{
		Data:     summaries,
		Total:    total,
		Page:     page,
		LastPage: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Details returns an active restaurant together with its address.
func (srv *restaurantService) Details(ctx context.Context, id uuid.UUID) (*usecase.RestaurantDetails, error) {
	srv.log(ctx).Debug("Fetching restaurant details", "restaurantID", id)

	restaurant, err := srv.restaurantRepo.FindDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, restaurantNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	if restaurant.Address == nil {
		return nil, domainerrors.ErrRestaurantAddressMissing.WithDetails(
			"no address registered for restaurant " + id.String(),
		)
	}

	return &usecase.RestaurantDetails{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		AverageRating: restaurant.AverageRating,
		DeliveryFee:   restaurant.DeliveryFee,
		Phone:         restaurant.Phone,
		Address: &usecase.AddressView{
			Street:       restaurant.Address.Street,
			Number:       restaurant.Address.Number,
			Neighborhood: restaurant.Address.Neighborhood,
			City:         restaurant.Address.City,
		},
	}, nil
}

// Menu returns the active menu items of a restaurant split into dishes and drinks.
func (srv *restaurantService) Menu(ctx context.Context, id uuid.UUID) (*usecase.MenuOutput, error) {
	srv.log(ctx).Debug("Fetching restaurant menu", "restaurantID", id)

	restaurant, err := srv.restaurantRepo.FindMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, restaurantNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	menu := &usecase.MenuOutput{
		Dishes: make([]*usecase.MenuItemView, 0),
		Drinks: make([]*usecase.MenuItemView, 0),
	}

	for _, item := range restaurant.Menu {
		if !item.Active {
			continue
		}

		view := &usecase.MenuItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		}

		switch item.Type {
		case entity.MenuTypeDrink:
			menu.Drinks = append(menu.Drinks, view)
		case entity.MenuTypeDish:
			menu.Dishes = append(menu.Dishes, view)
		}
	}

	return menu, nil
}
