package model

import (
	"time"

	"github.com/google/uuid"
)

// DonorLocationModel is the GORM-specific struct for the 'donor_locations'
// table. The unique index on UserID enforces the one-row-per-user upsert
// semantics of the geo index.
type DonorLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donor_locations_on_user"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Available bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorLocationModel) TableName() string {
	return "donor_locations"
}
