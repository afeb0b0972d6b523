package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(30)"`
	DeliveryFee   float64   `gorm:"type:double precision"`
	AverageRating float64   `gorm:"type:double precision;not null;default:0"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Address *AddressModel `gorm:"foreignKey:RestaurantID"`
	Menu    []MenuModel   `gorm:"foreignKey:RestaurantID"`
	Ratings []RatingModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// AddressModel mirrors the 'addresses' table. One address per restaurant.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(30);not null"`
	Neighborhood string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// MenuModel mirrors the 'menus' table. Type is either "dish" or "drink".
type MenuModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(20);not null;default:'dish'"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:double precision;not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}
