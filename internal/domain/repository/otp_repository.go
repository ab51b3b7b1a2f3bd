package repository

import (
	"context"

	"bloodcare/internal/domain/entity"
	"bloodcare/internal/errors"
)

// Domain-specific errors for OTP persistence.
var (
	// ErrOtpNotFound is returned when no challenge exists for the email and purpose.
	ErrOtpNotFound = errors.New("otp challenge not found")
)

// OtpRepository defines the interface for one-time-password database operations.
type OtpRepository interface {
	// Upsert stores the challenge keyed by (email, purpose), replacing any
	// previous challenge for that pair so only the latest code can verify.
	Upsert(ctx context.Context, challenge *entity.OtpChallenge) error

	// FindByEmailAndPurpose retrieves the current challenge for the pair.
	FindByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) (*entity.OtpChallenge, error)

	// DeleteByEmailAndPurpose removes the challenge for the pair. Missing
	// rows are not an error.
	DeleteByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) error
}
