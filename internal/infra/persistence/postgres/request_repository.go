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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new blood request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) (*entity.BloodRequest, error) {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create blood request")
	}

	return toRequestDomain(requestM), nil
}

// FindByID retrieves a blood request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var requestM model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByDonor retrieves all requests targeting a donor, newest first.
func (repo *requestRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error) {
	return repo.findRequests(ctx, "donor_id = ?", donorID)
}

// FindByRequester retrieves all requests created by a user, newest first.
func (repo *requestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	return repo.findRequests(ctx, "requester_id = ?", requesterID)
}

// TransitionStatus atomically moves a request from one status to another.
// The WHERE clause carries the expected current status so concurrent
// decisions serialize on the row and exactly one wins.
func (repo *requestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (*entity.BloodRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to transition request status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing request from a lost race.
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrRequestNotInState
	}

	return repo.FindByID(ctx, id)
}

func (repo *requestRepository) findRequests(ctx context.Context, cond string, arg any) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blood requests")
	}

	requests := make([]*entity.BloodRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM BloodRequestModel to a domain BloodRequest entity.
func toRequestDomain(data *model.BloodRequestModel) *entity.BloodRequest {
	if data == nil {
		return nil
	}

	return &entity.BloodRequest{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		DonorID:     data.DonorID,
		BloodGroup:  entity.BloodGroup(data.BloodGroup),
		Message:     data.Message,
		Status:      entity.RequestStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRequestDomain converts a domain BloodRequest entity to a GORM BloodRequestModel.
func fromRequestDomain(data *entity.BloodRequest) *model.BloodRequestModel {
	if data == nil {
		return nil
	}

	return &model.BloodRequestModel{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		DonorID:     data.DonorID,
		BloodGroup:  data.BloodGroup.String(),
		Message:     data.Message,
		Status:      data.Status.String(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
