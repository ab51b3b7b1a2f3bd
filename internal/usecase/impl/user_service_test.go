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
	mockSvc "bloodcare/internal/mocks/service"
	mockUsecase "bloodcare/internal/mocks/usecase"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	locationRepo *mockRepo.MockLocationRepository
	otp          *mockUsecase.MockOtpUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokens       *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	otp := mockUsecase.NewMockOtpUsecase(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(userRepo, locationRepo, otp, hasher, tokens, logger)

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		otp:          otp,
		hasher:       hasher,
		tokens:       tokens,
	}
}

func TestUserService_Register_DonorDefaults(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(ctx context.Context, user *entity.User) (*entity.User, error) {
			assert.Equal(t, entity.RoleDonor, user.Role)
			assert.Equal(t, "asha@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, entity.BloodGroupONegative, user.BloodGroup)
			assert.True(t, user.Eligible)
			assert.Equal(t, entity.ApprovalStatusApproved, user.ApprovalStatus)
			user.ID = uuid.New()

			return user, nil
		})

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:       "Asha Rao",
		Email:      " Asha@Example.com ",
		Password:   "Password123!",
		BloodGroup: "o-",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_HospitalStartsPending(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(ctx context.Context, user *entity.User) (*entity.User, error) {
			assert.Equal(t, entity.ApprovalStatusPending, user.ApprovalStatus)
			assert.False(t, user.Eligible)

			return user, nil
		})

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "City Hospital",
		Email:    "admin@cityhospital.example",
		Password: "Password123!",
		Role:     "hospital",
	})

	require.NoError(t, err)
}

func TestUserService_Register_DonorNeedsBloodGroup(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil, repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Password:   "Password123!",
		BloodGroup: "O-",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{
			ID:           userID,
			Role:         entity.RoleDonor,
			Email:        "asha@example.com",
			PasswordHash: "hashed_password",
		}, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "Password123!").Return(nil)
	fx.tokens.EXPECT().GenerateToken(userID, entity.RoleDonor).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Asha@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{
			Role:         entity.RoleDonor,
			Email:        "asha@example.com",
			PasswordHash: "hashed_password",
		}, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "wrong").Return(errors.New("mismatch"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmailHidesExistence(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_RoleMismatch(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(&entity.User{
			Role:         entity.RoleDonor,
			Email:        "asha@example.com",
			PasswordHash: "hashed_password",
		}, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "Password123!",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, domainerrors.ErrRoleMismatch)
}

func TestUserService_Login_UnapprovedHospitalBlocked(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@cityhospital.example").
		Return(&entity.User{
			Role:           entity.RoleHospital,
			Email:          "admin@cityhospital.example",
			PasswordHash:   "hashed_password",
			ApprovalStatus: entity.ApprovalStatusPending,
		}, nil)
	fx.hasher.EXPECT().Compare("hashed_password", "Password123!").Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@cityhospital.example",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrHospitalNotApproved)
	fx.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_VerifyEmail_MarksVerified(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.otp.EXPECT().
		Verify(ctx, "asha@example.com", entity.OtpPurposeEmailVerify, "042137").
		Return(nil)
	fx.userRepo.EXPECT().MarkVerified(ctx, "asha@example.com").Return(nil)

	err := fx.service.VerifyEmail(ctx, "Asha@Example.com", "042137")

	require.NoError(t, err)
}

func TestUserService_DeleteDonor_RemovesLocationFirst(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	donorID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, donorID).
		Return(&entity.User{ID: donorID, Role: entity.RoleDonor}, nil)
	fx.locationRepo.EXPECT().DeleteByUser(ctx, donorID).Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, donorID).Return(nil)

	err := fx.service.DeleteDonor(ctx, donorID)

	require.NoError(t, err)
}

func TestUserService_DeleteDonor_RejectsOtherRoles(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	targetID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleHospital}, nil)

	err := fx.service.DeleteDonor(ctx, targetID)

	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
