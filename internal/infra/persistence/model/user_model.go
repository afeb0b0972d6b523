// Package model declares the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
//
// EmailDigest carries a unique index inherited from the schema this service
// replaced. Because the digest is salted, equal plaintext emails produce
// different digests, so the constraint cannot actually catch duplicate
// registrations; duplicate detection would need a deterministic index key.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	EmailDigest    string    `gorm:"type:varchar(255);unique;not null"`
	PasswordDigest string    `gorm:"type:varchar(255);not null"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ratings []RatingModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
