package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. Rows are append-only: the service
// never updates or deletes a rating, so there is no UpdatedAt column.
type RatingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Score        float64   `gorm:"type:double precision;not null"`
	Comment      string    `gorm:"type:text"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
