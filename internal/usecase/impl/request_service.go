package impl

import (
	"context"
	"log/slog"
	"time"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
)

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	otp         usecase.OtpUsecase
	notifier    service.Notifier
	logger      *slog.Logger
}

// NewRequestService creates a new blood request service instance
func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	otp usecase.OtpUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		otp:         otp,
		notifier:    notifier,
		logger:      logger,
	}
}

// RequestOtp issues the code that gates request creation, mailed to the
// requester's own address so a stolen session alone cannot fire requests.
func (s *requestService) RequestOtp(ctx context.Context, requesterID uuid.UUID) error {
	requester, err := s.findUser(ctx, requesterID)
	if err != nil {
		return err
	}

	return s.otp.Issue(ctx, requester.Email, entity.OtpPurposeBloodRequest)
}

// Create verifies the requester's OTP, persists a pending request and pushes
// a bloodRequest event to the targeted donor.
func (s *requestService) Create(ctx context.Context, requesterID uuid.UUID, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	requester, err := s.findUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	// OTP failures surface as-is so the client can distinguish an expired
	// code from a mistyped one.
	if err := s.otp.Verify(ctx, requester.Email, entity.OtpPurposeBloodRequest, input.Otp); err != nil {
		return nil, err
	}

	donor, err := s.userRepo.FindByID(ctx, input.DonorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "find donor")
	}
	if donor.Role != entity.RoleDonor {
		return nil, domainerrors.ErrDonorNotFound
	}

	bloodGroup := donor.BloodGroup
	if input.BloodGroup != "" {
		parsed, ok := entity.ParseBloodGroup(input.BloodGroup)
		if !ok {
			return nil, domainerrors.ErrInvalidBloodGroup
		}
		bloodGroup = parsed
	}

	message := input.Message
	if message == "" {
		message = entity.DefaultRequestMessage
	}

	now := time.Now()
	request, err := s.requestRepo.Create(ctx, &entity.BloodRequest{
		RequesterID: requesterID,
		DonorID:     donor.ID,
		BloodGroup:  bloodGroup,
		Message:     message,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create blood request")
	}

	s.notifier.Unicast(donor.ID, service.EventBloodRequest, map[string]any{
		"message": message,
		"request": request,
	})

	return request, nil
}

// IncomingRequests lists requests targeting the caller as donor.
func (s *requestService) IncomingRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "find requests by donor")
	}

	return requests, nil
}

// OutgoingRequests lists requests the caller created.
func (s *requestService) OutgoingRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.FindByRequester(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "find requests by requester")
	}

	return requests, nil
}

// Accept moves a pending request to accepted and notifies the requester.
func (s *requestService) Accept(ctx context.Context, actingUserID, requestID uuid.UUID) (*entity.BloodRequest, error) {
	return s.decide(ctx, actingUserID, requestID, entity.RequestStatusAccepted, service.EventRequestAccepted)
}

// Reject moves a pending request to rejected and notifies the requester.
func (s *requestService) Reject(ctx context.Context, actingUserID, requestID uuid.UUID) (*entity.BloodRequest, error) {
	return s.decide(ctx, actingUserID, requestID, entity.RequestStatusRejected, service.EventRequestRejected)
}

// decide runs both donor decisions. Ownership is checked first, then the
// conditional transition resolves concurrent decisions so exactly one wins.
func (s *requestService) decide(ctx context.Context, actingUserID, requestID uuid.UUID, to entity.RequestStatus, event string) (*entity.BloodRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "find blood request")
	}

	if request.DonorID != actingUserID {
		return nil, domainerrors.ErrForbidden
	}

	updated, err := s.requestRepo.TransitionStatus(ctx, requestID, entity.RequestStatusPending, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return nil, domainerrors.ErrRequestNotFound
		case errors.Is(err, repository.ErrRequestNotInState):
			return nil, domainerrors.ErrRequestInvalidState
		default:
			return nil, errors.Wrap(err, "transition request status")
		}
	}

	s.notifier.Unicast(updated.RequesterID, event, map[string]any{
		"request": updated,
	})

	return updated, nil
}

func (s *requestService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return user, nil
}
