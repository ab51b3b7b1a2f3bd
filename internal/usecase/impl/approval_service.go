package impl

import (
	"context"
	"log/slog"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
)

type approvalService struct {
	userRepo repository.UserRepository
	otp      usecase.OtpUsecase
	logger   *slog.Logger
}

// NewApprovalService creates a new hospital approval service instance
func NewApprovalService(
	userRepo repository.UserRepository,
	otp usecase.OtpUsecase,
	logger *slog.Logger,
) usecase.ApprovalUsecase {
	return &approvalService{
		userRepo: userRepo,
		otp:      otp,
		logger:   logger,
	}
}

// PendingHospitals lists hospital accounts awaiting a decision.
func (s *approvalService) PendingHospitals(ctx context.Context) ([]*entity.User, error) {
	hospitals, err := s.userRepo.FindHospitalsByApproval(ctx, entity.ApprovalStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "find pending hospitals")
	}

	return hospitals, nil
}

// RequestOtp issues the approval code to the acting admin's own address.
func (s *approvalService) RequestOtp(ctx context.Context, adminID uuid.UUID) error {
	admin, err := s.findAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	return s.otp.Issue(ctx, admin.Email, entity.OtpPurposeAdminApproval)
}

// Approve verifies the admin's OTP and moves a pending hospital to approved.
// Approval grants real capability, so it alone is OTP-gated; rejection is not.
func (s *approvalService) Approve(ctx context.Context, adminID, hospitalID uuid.UUID, otp string) (*entity.User, error) {
	admin, err := s.findAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if err := s.otp.Verify(ctx, admin.Email, entity.OtpPurposeAdminApproval, otp); err != nil {
		return nil, err
	}

	return s.transition(ctx, hospitalID, entity.ApprovalStatusApproved)
}

// Reject moves a pending hospital to rejected. No OTP is required.
func (s *approvalService) Reject(ctx context.Context, adminID, hospitalID uuid.UUID) (*entity.User, error) {
	if _, err := s.findAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	return s.transition(ctx, hospitalID, entity.ApprovalStatusRejected)
}

func (s *approvalService) transition(ctx context.Context, hospitalID uuid.UUID, to entity.ApprovalStatus) (*entity.User, error) {
	hospital, err := s.userRepo.FindByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "find hospital")
	}
	if hospital.Role != entity.RoleHospital {
		return nil, domainerrors.ErrHospitalNotFound
	}

	updated, err := s.userRepo.UpdateApprovalStatus(ctx, hospitalID, entity.ApprovalStatusPending, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrHospitalNotFound
		case errors.Is(err, repository.ErrUserNotInState):
			return nil, domainerrors.ErrApprovalInvalidState
		default:
			return nil, errors.Wrap(err, "update approval status")
		}
	}

	s.logger.Info("hospital approval decided",
		slog.String("hospitalId", hospitalID.String()),
		slog.String("status", to.String()),
	)

	return updated, nil
}

func (s *approvalService) findAdmin(ctx context.Context, adminID uuid.UUID) (*entity.User, error) {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find admin")
	}
	if admin.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return admin, nil
}
