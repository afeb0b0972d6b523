package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuType distinguishes the two sections of a restaurant menu.
type MenuType string

const (
	// MenuTypeDish marks a food item.
	MenuTypeDish MenuType = "dish"
	// MenuTypeDrink marks a beverage item.
	MenuTypeDrink MenuType = "drink"
)

// Restaurant is a venue listed in the discovery catalog.
//
// AverageRating is denormalized: it is owned by the restaurant record but
// written exclusively by the rating usecase, which recomputes it from the
// full rating set after every submission.
type Restaurant struct {
	ID            uuid.UUID   // The unique ID of the restaurant.
	Name          string      // Venue name.
	Description   string      // Optional free-text description.
	Phone         string      // Contact phone number.
	DeliveryFee   float64     // Delivery fee charged by the venue.
	AverageRating float64     // Derived mean of all rating scores for this venue.
	Active        bool        // Inactive venues are hidden from the catalog and refuse new ratings.
	Address       *Address    // Optional preloaded address.
	Menu          []*MenuItem // Optional preloaded menu items.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Address is the physical location of a restaurant.
type Address struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Street       string
	Number       string
	Neighborhood string
	City         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MenuItem is a single dish or drink offered by a restaurant.
type MenuItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Type         MenuType
	Name         string
	Description  string
	Price        float64
	Active       bool // Inactive items are omitted from the served menu.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
