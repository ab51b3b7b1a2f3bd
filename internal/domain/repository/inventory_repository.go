package repository

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryRepository defines the interface for inventory-ledger database operations.
type InventoryRepository interface {
	// Create appends a ledger record.
	Create(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error)

	// TotalQuantity sums the recorded volume for one organisation, blood
	// group, and direction. Returns zero when no records exist.
	TotalQuantity(ctx context.Context, organisationID uuid.UUID, group entity.BloodGroup, recordType entity.RecordType) (int64, error)

	// FindByOrganisation retrieves an organisation's ledger entries of the
	// given direction, newest first.
	FindByOrganisation(ctx context.Context, organisationID uuid.UUID, recordType entity.RecordType) ([]*entity.InventoryRecord, error)

	// GroupTotals aggregates in and out volume per blood group for one
	// organisation.
	GroupTotals(ctx context.Context, organisationID uuid.UUID) ([]*entity.BloodGroupTotal, error)
}
