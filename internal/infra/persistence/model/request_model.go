package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequestModel is the GORM-specific struct for the 'blood_requests' table.
type BloodRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index:idx_blood_requests_on_requester"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_blood_requests_on_donor"`
	BloodGroup  string    `gorm:"type:varchar(3);not null"`
	Message     string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodRequestModel) TableName() string {
	return "blood_requests"
}
