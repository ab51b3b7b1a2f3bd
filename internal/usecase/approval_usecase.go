package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalUsecase defines the interface for admin approval of hospital accounts
type ApprovalUsecase interface {
	// PendingHospitals lists hospital accounts awaiting a decision.
	PendingHospitals(ctx context.Context) ([]*entity.User, error)

	// RequestOtp issues the one-time password that gates approval, mailed
	// to the acting admin's own address.
	RequestOtp(ctx context.Context, adminID uuid.UUID) error

	// Approve verifies the admin's OTP and moves a pending hospital to
	// approved.
	Approve(ctx context.Context, adminID, hospitalID uuid.UUID, otp string) (*entity.User, error)

	// Reject moves a pending hospital to rejected. Rejection needs no OTP.
	Reject(ctx context.Context, adminID, hospitalID uuid.UUID) (*entity.User, error)
}
