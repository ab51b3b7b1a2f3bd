package repository

import (
	"context"

	"bloodcare/internal/domain/entity"
	"bloodcare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for blood-request persistence.
var (
	// ErrRequestNotFound is returned when a blood request is not found.
	ErrRequestNotFound = errors.New("blood request not found")
	// ErrRequestNotInState is returned when a conditional transition matched
	// no row because the request left the expected state.
	ErrRequestNotInState = errors.New("blood request not in expected state")
)

// RequestRepository defines the interface for blood-request database operations.
type RequestRepository interface {
	// Create persists a new blood request.
	Create(ctx context.Context, request *entity.BloodRequest) (*entity.BloodRequest, error)

	// FindByID retrieves a blood request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// FindByDonor retrieves all requests targeting a donor, newest first.
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error)

	// FindByRequester retrieves all requests created by a user, newest first.
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// TransitionStatus atomically moves a request from one status to another
	// using a conditional update. It returns ErrRequestNotFound when the
	// request does not exist and ErrRequestNotInState when the request
	// exists but already left the from status. On success the updated
	// request is returned.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (*entity.BloodRequest, error)
}
