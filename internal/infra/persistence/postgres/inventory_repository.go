package postgres

import (
	"context"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// Create appends a ledger record.
func (repo *inventoryRepository) Create(ctx context.Context, record *entity.InventoryRecord) (*entity.InventoryRecord, error) {
	recordM := fromInventoryDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create inventory record")
	}

	return toInventoryDomain(recordM), nil
}

// TotalQuantity sums the recorded volume for one organisation, blood group,
// and direction.
func (repo *inventoryRepository) TotalQuantity(ctx context.Context, organisationID uuid.UUID, group entity.BloodGroup, recordType entity.RecordType) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InventoryRecordModel{}).
		Where("organisation_id = ? AND LOWER(blood_group) = LOWER(?) AND record_type = ?",
			organisationID, group.String(), recordType.String()).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum inventory quantity")
	}

	return total, nil
}

// FindByOrganisation retrieves an organisation's ledger entries of the given
// direction, newest first.
func (repo *inventoryRepository) FindByOrganisation(ctx context.Context, organisationID uuid.UUID, recordType entity.RecordType) ([]*entity.InventoryRecord, error) {
	var recordModels []*model.InventoryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("organisation_id = ? AND record_type = ?", organisationID, recordType.String()).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory records")
	}

	records := make([]*entity.InventoryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toInventoryDomain(recordM))
	}

	return records, nil
}

// GroupTotals aggregates in and out volume per blood group for one organisation.
func (repo *inventoryRepository) GroupTotals(ctx context.Context, organisationID uuid.UUID) ([]*entity.BloodGroupTotal, error) {
	var totals []*entity.BloodGroupTotal

	query := `
		SELECT blood_group,
		       COALESCE(SUM(quantity) FILTER (WHERE record_type = 'in'), 0)  AS total_in,
		       COALESCE(SUM(quantity) FILTER (WHERE record_type = 'out'), 0) AS total_out
		FROM inventory_records
		WHERE organisation_id = ?
		GROUP BY blood_group
		ORDER BY blood_group
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, organisationID).
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate inventory totals")
	}

	return totals, nil
}

// --- Mapper Functions ---

// toInventoryDomain converts a GORM InventoryRecordModel to a domain InventoryRecord entity.
func toInventoryDomain(data *model.InventoryRecordModel) *entity.InventoryRecord {
	if data == nil {
		return nil
	}

	return &entity.InventoryRecord{
		ID:             data.ID,
		OrganisationID: data.OrganisationID,
		RecordType:     entity.RecordType(data.RecordType),
		BloodGroup:     entity.BloodGroup(data.BloodGroup),
		Quantity:       data.Quantity,
		DonorID:        data.DonorID,
		HospitalID:     data.HospitalID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromInventoryDomain converts a domain InventoryRecord entity to a GORM InventoryRecordModel.
func fromInventoryDomain(data *entity.InventoryRecord) *model.InventoryRecordModel {
	if data == nil {
		return nil
	}

	return &model.InventoryRecordModel{
		ID:             data.ID,
		OrganisationID: data.OrganisationID,
		RecordType:     data.RecordType.String(),
		BloodGroup:     data.BloodGroup.String(),
		Quantity:       data.Quantity,
		DonorID:        data.DonorID,
		HospitalID:     data.HospitalID,
		CreatedAt:      data.CreatedAt,
	}
}
