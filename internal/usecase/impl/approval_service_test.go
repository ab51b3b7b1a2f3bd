package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	mockRepo "bloodcare/internal/mocks/repository"
	mockUsecase "bloodcare/internal/mocks/usecase"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// approvalServiceFixtures holds all test dependencies for approval service tests.
type approvalServiceFixtures struct {
	service  usecase.ApprovalUsecase
	userRepo *mockRepo.MockUserRepository
	otp      *mockUsecase.MockOtpUsecase
}

func createTestApprovalService(t *testing.T) approvalServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	otp := mockUsecase.NewMockOtpUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewApprovalService(userRepo, otp, logger)

	return approvalServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		otp:      otp,
	}
}

func testAdmin(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:    id,
		Role:  entity.RoleAdmin,
		Email: "admin@example.com",
	}
}

func TestApprovalService_Approve_Success(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	adminID := uuid.New()
	hospitalID := uuid.New()

	pending := &entity.User{
		ID:             hospitalID,
		Role:           entity.RoleHospital,
		ApprovalStatus: entity.ApprovalStatusPending,
	}
	approved := &entity.User{
		ID:             hospitalID,
		Role:           entity.RoleHospital,
		ApprovalStatus: entity.ApprovalStatusApproved,
	}

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(testAdmin(adminID), nil)
	fx.otp.EXPECT().
		Verify(ctx, "admin@example.com", entity.OtpPurposeAdminApproval, "042137").
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, hospitalID).Return(pending, nil)
	fx.userRepo.EXPECT().
		UpdateApprovalStatus(ctx, hospitalID, entity.ApprovalStatusPending, entity.ApprovalStatusApproved).
		Return(approved, nil)

	result, err := fx.service.Approve(ctx, adminID, hospitalID, "042137")

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, result.ApprovalStatus)
}

func TestApprovalService_Approve_OtpFailureBlocksTransition(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(testAdmin(adminID), nil)
	fx.otp.EXPECT().
		Verify(ctx, "admin@example.com", entity.OtpPurposeAdminApproval, "999999").
		Return(domainerrors.ErrOtpMismatch)

	_, err := fx.service.Approve(ctx, adminID, uuid.New(), "999999")

	assert.ErrorIs(t, err, domainerrors.ErrOtpMismatch)
	fx.userRepo.AssertNotCalled(t, "UpdateApprovalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_Reject_NeedsNoOtp(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	adminID := uuid.New()
	hospitalID := uuid.New()

	pending := &entity.User{
		ID:             hospitalID,
		Role:           entity.RoleHospital,
		ApprovalStatus: entity.ApprovalStatusPending,
	}
	rejected := &entity.User{
		ID:             hospitalID,
		Role:           entity.RoleHospital,
		ApprovalStatus: entity.ApprovalStatusRejected,
	}

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(testAdmin(adminID), nil)
	fx.userRepo.EXPECT().FindByID(ctx, hospitalID).Return(pending, nil)
	fx.userRepo.EXPECT().
		UpdateApprovalStatus(ctx, hospitalID, entity.ApprovalStatusPending, entity.ApprovalStatusRejected).
		Return(rejected, nil)

	result, err := fx.service.Reject(ctx, adminID, hospitalID)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusRejected, result.ApprovalStatus)
	fx.otp.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_Approve_NonAdminForbidden(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	actingID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, actingID).
		Return(&entity.User{ID: actingID, Role: entity.RoleDonor}, nil)

	_, err := fx.service.Approve(ctx, actingID, uuid.New(), "042137")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApprovalService_Approve_AlreadyDecided(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	adminID := uuid.New()
	hospitalID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(testAdmin(adminID), nil)
	fx.otp.EXPECT().
		Verify(ctx, "admin@example.com", entity.OtpPurposeAdminApproval, "042137").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, hospitalID).
		Return(&entity.User{
			ID:             hospitalID,
			Role:           entity.RoleHospital,
			ApprovalStatus: entity.ApprovalStatusRejected,
		}, nil)
	fx.userRepo.EXPECT().
		UpdateApprovalStatus(ctx, hospitalID, entity.ApprovalStatusPending, entity.ApprovalStatusApproved).
		Return(nil, repository.ErrUserNotInState)

	_, err := fx.service.Approve(ctx, adminID, hospitalID, "042137")

	assert.ErrorIs(t, err, domainerrors.ErrApprovalInvalidState)
}

func TestApprovalService_Approve_TargetMustBeHospital(t *testing.T) {
	fx := createTestApprovalService(t)
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, adminID).Return(testAdmin(adminID), nil)
	fx.otp.EXPECT().
		Verify(ctx, "admin@example.com", entity.OtpPurposeAdminApproval, "042137").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleOrganisation}, nil)

	_, err := fx.service.Approve(ctx, adminID, targetID, "042137")

	assert.ErrorIs(t, err, domainerrors.ErrHospitalNotFound)
}
