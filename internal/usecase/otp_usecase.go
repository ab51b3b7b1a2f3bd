package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"
)

// OtpUsecase defines the interface for issuing and verifying one-time passwords
type OtpUsecase interface {
	// Issue generates a fresh code for the (email, purpose) pair, stores it
	// and mails it to the recipient. Reissuing replaces the previous code.
	Issue(ctx context.Context, email string, purpose entity.OtpPurpose) error

	// Verify checks a submitted code. On success the code is consumed and
	// cannot verify again. Failed attempts leave the stored code untouched.
	Verify(ctx context.Context, email string, purpose entity.OtpPurpose, code string) error
}
