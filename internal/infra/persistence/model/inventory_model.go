package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecordModel is the GORM-specific struct for the
// 'inventory_records' table. Rows are append-only; stock is derived by
// aggregation.
type InventoryRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganisationID uuid.UUID  `gorm:"type:uuid;not null;index:idx_inventory_records_on_organisation"`
	RecordType     string     `gorm:"type:varchar(3);not null"`
	BloodGroup     string     `gorm:"type:varchar(3);not null"`
	Quantity       int64      `gorm:"not null"`
	DonorID        *uuid.UUID `gorm:"type:uuid"`
	HospitalID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryRecordModel) TableName() string {
	return "inventory_records"
}
