package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	mockRepo "bloodcare/internal/mocks/repository"
	mockSvc "bloodcare/internal/mocks/service"
	mockUsecase "bloodcare/internal/mocks/usecase"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
	userRepo    *mockRepo.MockUserRepository
	otp         *mockUsecase.MockOtpUsecase
	notifier    *mockSvc.MockNotifier
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	otp := mockUsecase.NewMockOtpUsecase(t)
	notifier := mockSvc.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRequestService(requestRepo, userRepo, otp, notifier, logger)

	return requestServiceFixtures{
		service:     svc,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		otp:         otp,
		notifier:    notifier,
	}
}

func testDonor(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:         id,
		Role:       entity.RoleDonor,
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		BloodGroup: entity.BloodGroupONegative,
	}
}

func TestRequestService_Create_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	donorID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, requesterID).
		Return(&entity.User{ID: requesterID, Role: entity.RoleDonor, Email: "requester@example.com"}, nil)
	fx.otp.EXPECT().
		Verify(ctx, "requester@example.com", entity.OtpPurposeBloodRequest, "042137").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, donorID).
		Return(testDonor(donorID), nil)

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BloodRequest")).
		Run(func(ctx context.Context, request *entity.BloodRequest) {
			assert.Equal(t, requesterID, request.RequesterID)
			assert.Equal(t, donorID, request.DonorID)
			assert.Equal(t, entity.RequestStatusPending, request.Status)
			// Blank blood group falls back to the donor's own group.
			assert.Equal(t, entity.BloodGroupONegative, request.BloodGroup)
			assert.Equal(t, entity.DefaultRequestMessage, request.Message)
			request.ID = uuid.New()
		}).
		RunAndReturn(func(ctx context.Context, request *entity.BloodRequest) (*entity.BloodRequest, error) {
			return request, nil
		})

	fx.notifier.EXPECT().
		Unicast(donorID, service.EventBloodRequest, mock.Anything).
		Return()

	request, err := fx.service.Create(ctx, requesterID, &usecase.CreateRequestInput{
		DonorID: donorID,
		Otp:     "042137",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, request.ID)
}

func TestRequestService_Create_OtpFailurePropagates(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, requesterID).
		Return(&entity.User{ID: requesterID, Role: entity.RoleDonor, Email: "requester@example.com"}, nil)
	fx.otp.EXPECT().
		Verify(ctx, "requester@example.com", entity.OtpPurposeBloodRequest, "999999").
		Return(domainerrors.ErrOtpMismatch)

	_, err := fx.service.Create(ctx, requesterID, &usecase.CreateRequestInput{
		DonorID: uuid.New(),
		Otp:     "999999",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOtpMismatch)
	fx.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.notifier.AssertNotCalled(t, "Unicast", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_Create_TargetMustBeDonor(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	targetID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, requesterID).
		Return(&entity.User{ID: requesterID, Role: entity.RoleDonor, Email: "requester@example.com"}, nil)
	fx.otp.EXPECT().
		Verify(ctx, "requester@example.com", entity.OtpPurposeBloodRequest, "042137").
		Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleHospital}, nil)

	_, err := fx.service.Create(ctx, requesterID, &usecase.CreateRequestInput{
		DonorID: targetID,
		Otp:     "042137",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}

func TestRequestService_Accept_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	donorID := uuid.New()
	requesterID := uuid.New()
	requestID := uuid.New()

	pending := &entity.BloodRequest{
		ID:          requestID,
		RequesterID: requesterID,
		DonorID:     donorID,
		Status:      entity.RequestStatusPending,
	}
	accepted := &entity.BloodRequest{
		ID:          requestID,
		RequesterID: requesterID,
		DonorID:     donorID,
		Status:      entity.RequestStatusAccepted,
	}

	fx.requestRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.RequestStatusPending, entity.RequestStatusAccepted).
		Return(accepted, nil)
	fx.notifier.EXPECT().
		Unicast(requesterID, service.EventRequestAccepted, mock.Anything).
		Return()

	result, err := fx.service.Accept(ctx, donorID, requestID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, result.Status)
}

func TestRequestService_Accept_OnlyTargetDonorMayDecide(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.BloodRequest{
			ID:      requestID,
			DonorID: uuid.New(),
			Status:  entity.RequestStatusPending,
		}, nil)

	_, err := fx.service.Accept(ctx, uuid.New(), requestID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.requestRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_Reject_AlreadyDecided(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	donorID := uuid.New()
	requestID := uuid.New()

	fx.requestRepo.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.BloodRequest{
			ID:      requestID,
			DonorID: donorID,
			Status:  entity.RequestStatusAccepted,
		}, nil)
	fx.requestRepo.EXPECT().
		TransitionStatus(ctx, requestID, entity.RequestStatusPending, entity.RequestStatusRejected).
		Return(nil, repository.ErrRequestNotInState)

	_, err := fx.service.Reject(ctx, donorID, requestID)

	assert.ErrorIs(t, err, domainerrors.ErrRequestInvalidState)
	fx.notifier.AssertNotCalled(t, "Unicast", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_RequestOtp_MailsRequesterAddress(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, requesterID).
		Return(&entity.User{ID: requesterID, Role: entity.RoleDonor, Email: "requester@example.com"}, nil)
	fx.otp.EXPECT().
		Issue(ctx, "requester@example.com", entity.OtpPurposeBloodRequest).
		Return(nil)

	err := fx.service.RequestOtp(ctx, requesterID)

	require.NoError(t, err)
}
