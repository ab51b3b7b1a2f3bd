package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput represents the input for creating an account
type RegisterInput struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Age        int    `json:"age"`
	Pincode    string `json:"pincode"`
	BloodGroup string `json:"blood_group"`
	Agree      bool   `json:"agree"`
}

// LoginInput represents the input for signing in
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginOutput bundles the signed token with the authenticated user
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for account management use cases
type UserUsecase interface {
	// Register creates an account. Hospital accounts start pending admin
	// approval; every other role is active immediately.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login authenticates by email, password and expected role, returning
	// a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser loads the authenticated user's profile.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RequestEmailVerification issues an emailVerify OTP to the address.
	RequestEmailVerification(ctx context.Context, email string) error

	// VerifyEmail consumes an emailVerify OTP and marks the account verified.
	VerifyEmail(ctx context.Context, email, code string) error

	// ListByRole lists accounts holding a role, for admin views.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// DeleteDonor removes a donor account together with its location record.
	DeleteDonor(ctx context.Context, donorID uuid.UUID) error
}
