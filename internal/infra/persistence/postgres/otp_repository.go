package postgres

import (
	"context"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// otpRepository implements the repository.OtpRepository interface.
type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{
		db: db,
	}
}

// Upsert stores the challenge keyed by (email, purpose). The conflict update
// replaces the code and expiry in place, which is what makes reissued codes
// latest-wins.
func (repo *otpRepository) Upsert(ctx context.Context, challenge *entity.OtpChallenge) error {
	challengeM := fromOtpDomain(challenge)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}, {Name: "purpose"}},
			DoUpdates: clause.Assignments(map[string]any{
				"code":       challengeM.Code,
				"expires_at": challengeM.ExpiresAt,
				"created_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(challengeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert otp challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// FindByEmailAndPurpose retrieves the current challenge for the pair.
func (repo *otpRepository) FindByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) (*entity.OtpChallenge, error) {
	var challengeM model.OtpChallengeModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose.String()).
		First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	return toOtpDomain(&challengeM), nil
}

// DeleteByEmailAndPurpose removes the challenge for the pair.
func (repo *otpRepository) DeleteByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose.String()).
		Delete(&model.OtpChallengeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete otp challenge")
	}

	return nil
}

// --- Mapper Functions ---

// toOtpDomain converts a GORM OtpChallengeModel to a domain OtpChallenge entity.
func toOtpDomain(data *model.OtpChallengeModel) *entity.OtpChallenge {
	if data == nil {
		return nil
	}

	return &entity.OtpChallenge{
		ID:        data.ID,
		Email:     data.Email,
		Code:      data.Code,
		Purpose:   entity.OtpPurpose(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromOtpDomain converts a domain OtpChallenge entity to a GORM OtpChallengeModel.
func fromOtpDomain(data *entity.OtpChallenge) *model.OtpChallengeModel {
	if data == nil {
		return nil
	}

	return &model.OtpChallengeModel{
		ID:        data.ID,
		Email:     data.Email,
		Code:      data.Code,
		Purpose:   data.Purpose.String(),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
