package repository

import (
	"context"
	"time"

	"bloodcare/internal/domain/entity"
	"bloodcare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotInState is returned when a conditional approval update
	// matched no row because the account left the expected state.
	ErrUserNotInState = errors.New("user not in expected approval state")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByRole retrieves all users holding the given role, newest first.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// FindHospitalsByApproval retrieves hospital accounts in the given
	// approval state, newest first.
	FindHospitalsByApproval(ctx context.Context, status entity.ApprovalStatus) ([]*entity.User, error)

	// UpdateApprovalStatus atomically moves an account between approval
	// states using a conditional update. It returns ErrUserNotFound when
	// the account does not exist and ErrUserNotInState when the account
	// already left the from state.
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, from, to entity.ApprovalStatus) (*entity.User, error)

	// MarkVerified flags the account with the given email as email-verified.
	MarkVerified(ctx context.Context, email string) error

	// ResetEligibility marks donors eligible again when their last donation
	// is on or before the cutoff, or they never donated. Returns the number
	// of rows flipped.
	ResetEligibility(ctx context.Context, cutoff time.Time) (int64, error)

	// Delete removes a user account by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
