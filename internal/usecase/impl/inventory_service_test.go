package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	mockRepo "bloodcare/internal/mocks/repository"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockRepo.MockInventoryRepository
	userRepo      *mockRepo.MockUserRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewInventoryService(inventoryRepo, userRepo, logger)

	return inventoryServiceFixtures{
		service:       svc,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
	}
}

func TestInventoryService_RecordIn_LinksDonorByEmail(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()
	organisationID := uuid.New()
	donorID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{ID: donorID, Role: entity.RoleDonor}, nil)
	fx.inventoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InventoryRecord")).
		RunAndReturn(func(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error) {
			assert.Equal(t, organisationID, record.OrganisationID)
			assert.Equal(t, entity.RecordTypeIn, record.RecordType)
			assert.Equal(t, entity.BloodGroupBPositive, record.BloodGroup)
			assert.Equal(t, int64(450), record.Quantity)
			require.NotNil(t, record.DonorID)
			assert.Equal(t, donorID, *record.DonorID)

			return record, nil
		})

	_, err := fx.service.RecordIn(ctx, organisationID, &usecase.AddInventoryInput{
		BloodGroup: "b+",
		Quantity:   450,
		DonorEmail: "asha@example.com",
	})

	require.NoError(t, err)
}

func TestInventoryService_RecordOut_InsufficientStock(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()
	organisationID := uuid.New()

	fx.inventoryRepo.EXPECT().
		TotalQuantity(ctx, organisationID, entity.BloodGroupONegative, entity.RecordTypeIn).
		Return(int64(900), nil)
	fx.inventoryRepo.EXPECT().
		TotalQuantity(ctx, organisationID, entity.BloodGroupONegative, entity.RecordTypeOut).
		Return(int64(600), nil)

	_, err := fx.service.RecordOut(ctx, organisationID, &usecase.AddInventoryInput{
		BloodGroup: "O-",
		Quantity:   500,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "only 300 ML available")
	fx.inventoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInventoryService_RecordOut_ExactStockAllowed(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()
	organisationID := uuid.New()
	hospitalID := uuid.New()

	fx.inventoryRepo.EXPECT().
		TotalQuantity(ctx, organisationID, entity.BloodGroupONegative, entity.RecordTypeIn).
		Return(int64(500), nil)
	fx.inventoryRepo.EXPECT().
		TotalQuantity(ctx, organisationID, entity.BloodGroupONegative, entity.RecordTypeOut).
		Return(int64(0), nil)
	fx.inventoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InventoryRecord")).
		RunAndReturn(func(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error) {
			assert.Equal(t, entity.RecordTypeOut, record.RecordType)
			require.NotNil(t, record.HospitalID)
			assert.Equal(t, hospitalID, *record.HospitalID)

			return record, nil
		})

	_, err := fx.service.RecordOut(ctx, organisationID, &usecase.AddInventoryInput{
		BloodGroup: "O-",
		Quantity:   500,
		HospitalID: hospitalID.String(),
	})

	require.NoError(t, err)
}

func TestInventoryService_RecordIn_RejectsInvalidMovement(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	_, err := fx.service.RecordIn(ctx, uuid.New(), &usecase.AddInventoryInput{
		BloodGroup: "X+",
		Quantity:   450,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)

	_, err = fx.service.RecordIn(ctx, uuid.New(), &usecase.AddInventoryInput{
		BloodGroup: "O-",
		Quantity:   0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_Records_UnknownType(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	_, err := fx.service.Records(ctx, uuid.New(), entity.RecordType("sideways"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
