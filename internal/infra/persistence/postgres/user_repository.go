package postgres

import (
	"context"
	"time"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return toUserDomain(userM), nil
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByRole retrieves all users holding the given role, newest first.
func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by role")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindHospitalsByApproval retrieves hospital accounts in the given approval state.
func (repo *userRepository) FindHospitalsByApproval(ctx context.Context, status entity.ApprovalStatus) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("role = ? AND approval_status = ?", entity.RoleHospital.String(), status.String()).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find hospitals by approval status")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateApprovalStatus atomically moves an account between approval states.
// The WHERE clause carries the expected current state so a concurrent
// decision loses cleanly instead of overwriting.
func (repo *userRepository) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, from, to entity.ApprovalStatus) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND approval_status = ?", id, from.String()).
		Update("approval_status", to.String())

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update approval status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing account from a lost race.
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrUserNotInState
	}

	return repo.FindByID(ctx, id)
}

// MarkVerified flags the account with the given email as email-verified.
func (repo *userRepository) MarkVerified(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("is_verified", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark user verified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ResetEligibility marks donors eligible again when their last donation is on
// or before the cutoff, or they never donated.
func (repo *userRepository) ResetEligibility(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ? AND eligible = false AND (last_donation_date IS NULL OR last_donation_date <= ?)",
			entity.RoleDonor.String(), cutoff).
		Update("eligible", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reset donor eligibility")
	}

	return result.RowsAffected, nil
}

// Delete removes a user account by its ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Role:             entity.Role(data.Role),
		Name:             data.Name,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Phone:            data.Phone,
		Age:              data.Age,
		Pincode:          data.Pincode,
		BloodGroup:       entity.BloodGroup(data.BloodGroup),
		Agree:            data.Agree,
		LastDonationDate: data.LastDonationDate,
		Eligible:         data.Eligible,
		IsVerified:       data.IsVerified,
		ApprovalStatus:   entity.ApprovalStatus(data.ApprovalStatus),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Role:             data.Role.String(),
		Name:             data.Name,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Phone:            data.Phone,
		Age:              data.Age,
		Pincode:          data.Pincode,
		BloodGroup:       data.BloodGroup.String(),
		Agree:            data.Agree,
		LastDonationDate: data.LastDonationDate,
		Eligible:         data.Eligible,
		IsVerified:       data.IsVerified,
		ApprovalStatus:   data.ApprovalStatus.String(),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
