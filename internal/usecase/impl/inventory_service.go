package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// NewInventoryService creates a new inventory ledger service instance
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// RecordIn appends a donation to the organisation's ledger.
func (s *inventoryService) RecordIn(ctx context.Context, organisationID uuid.UUID, input *usecase.AddInventoryInput) (*entity.InventoryRecord, error) {
	bloodGroup, err := validateMovement(input)
	if err != nil {
		return nil, err
	}

	var donorID *uuid.UUID
	if input.DonorEmail != "" {
		donor, err := s.userRepo.FindByEmail(ctx, input.DonorEmail)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrDonorNotFound
			}

			return nil, errors.Wrap(err, "find donor by email")
		}
		donorID = &donor.ID
	}

	record, err := s.inventoryRepo.Create(ctx, &entity.InventoryRecord{
		OrganisationID: organisationID,
		RecordType:     entity.RecordTypeIn,
		BloodGroup:     bloodGroup,
		Quantity:       input.Quantity,
		DonorID:        donorID,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create inventory record")
	}

	return record, nil
}

// RecordOut appends an issue to a hospital. The derived stock level guards
// the write so the ledger never goes negative.
func (s *inventoryService) RecordOut(ctx context.Context, organisationID uuid.UUID, input *usecase.AddInventoryInput) (*entity.InventoryRecord, error) {
	bloodGroup, err := validateMovement(input)
	if err != nil {
		return nil, err
	}

	totalIn, err := s.inventoryRepo.TotalQuantity(ctx, organisationID, bloodGroup, entity.RecordTypeIn)
	if err != nil {
		return nil, errors.Wrap(err, "sum inbound inventory")
	}
	totalOut, err := s.inventoryRepo.TotalQuantity(ctx, organisationID, bloodGroup, entity.RecordTypeOut)
	if err != nil {
		return nil, errors.Wrap(err, "sum outbound inventory")
	}

	available := totalIn - totalOut
	if input.Quantity > available {
		return nil, domainerrors.ErrInsufficientInventory.
			WithDetails(fmt.Sprintf("only %d ML available", available))
	}

	var hospitalID *uuid.UUID
	if input.HospitalID != "" {
		id, err := uuid.Parse(input.HospitalID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid hospital id")
		}
		hospitalID = &id
	}

	record, err := s.inventoryRepo.Create(ctx, &entity.InventoryRecord{
		OrganisationID: organisationID,
		RecordType:     entity.RecordTypeOut,
		BloodGroup:     bloodGroup,
		Quantity:       input.Quantity,
		HospitalID:     hospitalID,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create inventory record")
	}

	return record, nil
}

// Records lists ledger entries of one direction, newest first.
func (s *inventoryService) Records(ctx context.Context, organisationID uuid.UUID, recordType entity.RecordType) ([]*entity.InventoryRecord, error) {
	if !recordType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown record type")
	}

	records, err := s.inventoryRepo.FindByOrganisation(ctx, organisationID, recordType)
	if err != nil {
		return nil, errors.Wrap(err, "find inventory records")
	}

	return records, nil
}

// Analytics aggregates in and out volume per blood group.
func (s *inventoryService) Analytics(ctx context.Context, organisationID uuid.UUID) ([]*entity.BloodGroupTotal, error) {
	totals, err := s.inventoryRepo.GroupTotals(ctx, organisationID)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate inventory totals")
	}

	return totals, nil
}

func validateMovement(input *usecase.AddInventoryInput) (entity.BloodGroup, error) {
	bloodGroup, ok := entity.ParseBloodGroup(input.BloodGroup)
	if !ok {
		return "", domainerrors.ErrInvalidBloodGroup
	}
	if input.Quantity <= 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	return bloodGroup, nil
}
