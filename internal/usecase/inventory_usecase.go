package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// AddInventoryInput represents the input for recording an inventory movement
type AddInventoryInput struct {
	BloodGroup string `json:"blood_group"`
	Quantity   int64  `json:"quantity"`              // Millilitres.
	DonorEmail string `json:"donor_email,omitempty"` // For "in" records.
	HospitalID string `json:"hospital_id,omitempty"` // For "out" records.
}

// InventoryUsecase defines the interface for the blood stock ledger
type InventoryUsecase interface {
	// RecordIn appends a donation to the organisation's ledger.
	RecordIn(ctx context.Context, organisationID uuid.UUID, input *AddInventoryInput) (*entity.InventoryRecord, error)

	// RecordOut appends an issue to a hospital, guarded by the derived
	// stock level.
	RecordOut(ctx context.Context, organisationID uuid.UUID, input *AddInventoryInput) (*entity.InventoryRecord, error)

	// Records lists ledger entries of one direction, newest first.
	Records(ctx context.Context, organisationID uuid.UUID, recordType entity.RecordType) ([]*entity.InventoryRecord, error)

	// Analytics aggregates in and out volume per blood group.
	Analytics(ctx context.Context, organisationID uuid.UUID) ([]*entity.BloodGroupTotal, error)
}
