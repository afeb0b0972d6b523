package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ListRestaurantsInput defines catalog pagination and search parameters.
type ListRestaurantsInput struct {
	Page   int
	Limit  int
	Search string
}

// RestaurantSummary is the catalog listing shape of a restaurant.
type RestaurantSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DeliveryFee   float64   `json:"delivery_fee"`
	AverageRating float64   `json:"average_rating"`
}

// ListRestaurantsOutput is one page of the catalog.
type ListRestaurantsOutput struct {
	Data     []*RestaurantSummary `json:"data"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	LastPage int                  `json:"last_page"`
}

// AddressView is the address shape exposed on restaurant details.
type AddressView struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

// RestaurantDetails is the single-restaurant shape with its address.
type RestaurantDetails struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	AverageRating float64      `json:"average_rating"`
	DeliveryFee   float64      `json:"delivery_fee"`
	Phone         string       `json:"phone"`
	Address       *AddressView `json:"address"`
}

// MenuItemView is the served shape of a single menu item.
type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// MenuOutput splits a restaurant's active menu into its two sections.
type MenuOutput struct {
	Dishes []*MenuItemView `json:"dishes"`
	Drinks []*MenuItemView `json:"drinks"`
}

// RestaurantUsecase defines the interface for browsing the restaurant catalog.
type RestaurantUsecase interface {
	// List returns a page of active restaurants, optionally filtered by a
	// search term over restaurant and menu names and descriptions.
	List(ctx context.Context, input *ListRestaurantsInput) (*ListRestaurantsOutput, error)

	// Details returns an active restaurant with its address.
	Details(ctx context.Context, id uuid.UUID) (*RestaurantDetails, error)

	// Menu returns the active menu items of a restaurant, split into dishes
	// and drinks.
	Menu(ctx context.Context, id uuid.UUID) (*MenuOutput, error)
}
