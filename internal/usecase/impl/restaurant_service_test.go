package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restaurantServiceFixtures holds all test dependencies for restaurant service tests.
type restaurantServiceFixtures struct {
	service        usecase.RestaurantUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRestaurantService(restaurantRepo, logger)

	return restaurantServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
	}
}

func TestRestaurantService_List_DefaultsAndLastPage(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurants := []*entity.Restaurant{
		{ID: uuid.New(), Name: "Alpha", DeliveryFee: 3.5, AverageRating: 4.2},
		{ID: uuid.New(), Name: "Beta", DeliveryFee: 0, AverageRating: 3.9},
	}

	// Page and limit below 1 fall back to the defaults.
	fx.restaurantRepo.EXPECT().List(ctx, 1, 10, "").Return(restaurants, 25, nil)

	output, err := fx.service.List(ctx, &usecase.ListRestaurantsInput{Page: 0, Limit: 0})

	require.NoError(t, err)
	require.Len(t, output.Data, 2)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 3, output.LastPage)
	assert.Equal(t, "Alpha", output.Data[0].Name)
}

func TestRestaurantService_List_Search(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().List(ctx, 2, 5, "pizza").Return([]*entity.Restaurant{}, 0, nil)

	output, err := fx.service.List(ctx, &usecase.ListRestaurantsInput{Page: 2, Limit: 5, Search: "pizza"})

	require.NoError(t, err)
	assert.Empty(t, output.Data)
	assert.Equal(t, int64(0), output.Total)
	assert.Equal(t, 0, output.LastPage)
}

func TestRestaurantService_Details_Success(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	restaurant := &entity.Restaurant{
		ID:            id,
		Name:          "Test Kitchen",
		AverageRating: 4.5,
		DeliveryFee:   2.5,
		Phone:         "555-0100",
		Active:        true,
		Address: &entity.Address{
			Street:       "Main St",
			Number:       "42",
			Neighborhood: "Downtown",
			City:         "Springfield",
		},
	}

	fx.restaurantRepo.EXPECT().FindDetailsByID(ctx, id).Return(restaurant, nil)

	details, err := fx.service.Details(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, "Test Kitchen", details.Name)
	require.NotNil(t, details.Address)
	assert.Equal(t, "Springfield", details.Address.City)
}

func TestRestaurantService_Details_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.restaurantRepo.EXPECT().FindDetailsByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	details, err := fx.service.Details(ctx, id)

	require.Error(t, err)
	assert.Nil(t, details)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestRestaurantService_Details_MissingAddress(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	restaurant := &entity.Restaurant{ID: id, Name: "Test Kitchen", Active: true}

	fx.restaurantRepo.EXPECT().FindDetailsByID(ctx, id).Return(restaurant, nil)

	details, err := fx.service.Details(ctx, id)

	require.Error(t, err)
	assert.Nil(t, details)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRestaurantAddressMissing.ErrorCode(), appErr.ErrorCode())
}

func TestRestaurantService_Menu_SplitsAndFilters(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	restaurant := &entity.Restaurant{
		ID:     id,
		Name:   "Test Kitchen",
		Active: true,
		Menu: []*entity.MenuItem{
			{ID: uuid.New(), Type: entity.MenuTypeDish, Name: "Burger", Price: 12, Active: true},
			{ID: uuid.New(), Type: entity.MenuTypeDrink, Name: "Lemonade", Price: 4, Active: true},
			{ID: uuid.New(), Type: entity.MenuTypeDish, Name: "Retired Special", Price: 20, Active: false},
		},
	}

	fx.restaurantRepo.EXPECT().FindMenuByID(ctx, id).Return(restaurant, nil)

	menu, err := fx.service.Menu(ctx, id)

	require.NoError(t, err)
	require.Len(t, menu.Dishes, 1)
	require.Len(t, menu.Drinks, 1)
	assert.Equal(t, "Burger", menu.Dishes[0].Name)
	assert.Equal(t, "Lemonade", menu.Drinks[0].Name)
}

func TestRestaurantService_Menu_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.restaurantRepo.EXPECT().FindMenuByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	menu, err := fx.service.Menu(ctx, id)

	require.Error(t, err)
	assert.Nil(t, menu)
}
