package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bloodcare/config"
	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	mockRepo "bloodcare/internal/mocks/repository"
	mockSvc "bloodcare/internal/mocks/service"
	"bloodcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// otpServiceFixtures holds all test dependencies for OTP service tests.
type otpServiceFixtures struct {
	service usecase.OtpUsecase
	otpRepo *mockRepo.MockOtpRepository
	mailer  *mockSvc.MockMailer
}

func createTestOtpService(t *testing.T) otpServiceFixtures {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOtpService(otpRepo, mailer, logger, &config.Config{})

	return otpServiceFixtures{
		service: service,
		otpRepo: otpRepo,
		mailer:  mailer,
	}
}

func TestOtpService_Issue_StoresAndMailsCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	var storedCode string
	fx.otpRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OtpChallenge")).
		Run(func(ctx context.Context, challenge *entity.OtpChallenge) {
			storedCode = challenge.Code
			assert.Equal(t, "donor@example.com", challenge.Email)
			assert.Equal(t, entity.OtpPurposeBloodRequest, challenge.Purpose)
			assert.True(t, challenge.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	fx.mailer.EXPECT().
		Send(ctx, "donor@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			assert.Contains(t, body, storedCode)
		}).
		Return(nil)

	err := fx.service.Issue(ctx, "donor@example.com", entity.OtpPurposeBloodRequest)

	require.NoError(t, err)
	assert.Len(t, storedCode, 6)
}

func TestOtpService_Issue_MailFailure(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OtpChallenge")).
		Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, "donor@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	err := fx.service.Issue(ctx, "donor@example.com", entity.OtpPurposeBloodRequest)

	assert.ErrorIs(t, err, domainerrors.ErrOtpDeliveryFailed)
}

func TestOtpService_Verify_SuccessConsumesCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		FindByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(&entity.OtpChallenge{
			Email:     "donor@example.com",
			Code:      "042137",
			Purpose:   entity.OtpPurposeBloodRequest,
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpRepo.EXPECT().
		DeleteByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(nil)

	err := fx.service.Verify(ctx, "donor@example.com", entity.OtpPurposeBloodRequest, "042137")

	require.NoError(t, err)
}

func TestOtpService_Verify_MismatchDoesNotConsume(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		FindByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(&entity.OtpChallenge{
			Email:     "donor@example.com",
			Code:      "042137",
			Purpose:   entity.OtpPurposeBloodRequest,
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)

	err := fx.service.Verify(ctx, "donor@example.com", entity.OtpPurposeBloodRequest, "999999")

	assert.ErrorIs(t, err, domainerrors.ErrOtpMismatch)
	fx.otpRepo.AssertNotCalled(t, "DeleteByEmailAndPurpose", mock.Anything, mock.Anything, mock.Anything)
}

func TestOtpService_Verify_ExpiredBeforeMismatch(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	// An expired challenge reports expiry even when the code is also wrong.
	fx.otpRepo.EXPECT().
		FindByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(&entity.OtpChallenge{
			Email:     "donor@example.com",
			Code:      "042137",
			Purpose:   entity.OtpPurposeBloodRequest,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	err := fx.service.Verify(ctx, "donor@example.com", entity.OtpPurposeBloodRequest, "999999")

	assert.ErrorIs(t, err, domainerrors.ErrOtpExpired)
}

func TestOtpService_Verify_NotFound(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		FindByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(nil, repository.ErrOtpNotFound)

	err := fx.service.Verify(ctx, "donor@example.com", entity.OtpPurposeBloodRequest, "042137")

	assert.ErrorIs(t, err, domainerrors.ErrOtpNotFound)
}

func TestOtpService_Verify_ConsumeFailureFailsVerification(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		FindByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(&entity.OtpChallenge{
			Email:     "donor@example.com",
			Code:      "042137",
			Purpose:   entity.OtpPurposeBloodRequest,
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}, nil)
	fx.otpRepo.EXPECT().
		DeleteByEmailAndPurpose(ctx, "donor@example.com", entity.OtpPurposeBloodRequest).
		Return(errors.New("connection reset"))

	err := fx.service.Verify(ctx, "donor@example.com", entity.OtpPurposeBloodRequest, "042137")

	assert.Error(t, err)
}

func TestGenerateOtpCode_Format(t *testing.T) {
	for range 32 {
		code, err := generateOtpCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
