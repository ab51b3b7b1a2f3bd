package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	otp          usecase.OtpUsecase
	hasher       service.PasswordHasher
	tokens       service.TokenService
	logger       *slog.Logger
}

// NewUserService creates a new account management service instance
func NewUserService(
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
	otp usecase.OtpUsecase,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		locationRepo: locationRepo,
		otp:          otp,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register creates an account. Hospital accounts start pending admin
// approval; every other role is active immediately.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if input.Role == "" {
		role = entity.RoleDonor
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var bloodGroup entity.BloodGroup
	if input.BloodGroup != "" {
		parsed, ok := entity.ParseBloodGroup(input.BloodGroup)
		if !ok {
			return nil, domainerrors.ErrInvalidBloodGroup
		}
		bloodGroup = parsed
	}
	if role == entity.RoleDonor && bloodGroup == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("donors must provide a blood group")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	approval := entity.ApprovalStatusApproved
	if role == entity.RoleHospital {
		approval = entity.ApprovalStatusPending
	}

	now := time.Now()
	user, err := s.userRepo.Create(ctx, &entity.User{
		Role:           role,
		Name:           input.Name,
		Email:          email,
		PasswordHash:   hash,
		Phone:          input.Phone,
		Age:            input.Age,
		Pincode:        input.Pincode,
		BloodGroup:     bloodGroup,
		Agree:          input.Agree,
		Eligible:       role == entity.RoleDonor,
		ApprovalStatus: approval,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "create user")
	}

	return user, nil
}

// Login authenticates by email, password and expected role. The role check
// keeps a donor token from opening a hospital or admin surface.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "find user by email")
	}

	if input.Role != "" && user.Role != entity.Role(input.Role) {
		return nil, domainerrors.ErrRoleMismatch
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Role == entity.RoleHospital && user.ApprovalStatus != entity.ApprovalStatusApproved {
		return nil, domainerrors.ErrHospitalNotApproved
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "generate token")
	}

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// CurrentUser loads the authenticated user's profile.
func (s *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by ID")
	}

	return user, nil
}

// RequestEmailVerification issues an emailVerify OTP to the address. The
// address must belong to a known account.
func (s *userService) RequestEmailVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "find user by email")
	}

	return s.otp.Issue(ctx, email, entity.OtpPurposeEmailVerify)
}

// VerifyEmail consumes an emailVerify OTP and marks the account verified.
func (s *userService) VerifyEmail(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.otp.Verify(ctx, email, entity.OtpPurposeEmailVerify, code); err != nil {
		return err
	}

	if err := s.userRepo.MarkVerified(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "mark user verified")
	}

	return nil
}

// ListByRole lists accounts holding a role.
func (s *userService) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "find users by role")
	}

	return users, nil
}

// DeleteDonor removes a donor account together with its location record so
// the geo index never serves a deleted donor.
func (s *userService) DeleteDonor(ctx context.Context, donorID uuid.UUID) error {
	donor, err := s.userRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return errors.Wrap(err, "find donor")
	}
	if donor.Role != entity.RoleDonor {
		return domainerrors.ErrDonorNotFound
	}

	if err := s.locationRepo.DeleteByUser(ctx, donorID); err != nil {
		return errors.Wrap(err, "delete donor location")
	}

	if err := s.userRepo.Delete(ctx, donorID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return errors.Wrap(err, "delete donor")
	}

	s.logger.Info("donor account deleted", slog.String("donorId", donorID.String()))

	return nil
}
