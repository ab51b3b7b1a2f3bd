package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput represents the input for creating a blood request
type CreateRequestInput struct {
	DonorID    uuid.UUID `json:"donor_id"`
	BloodGroup string    `json:"blood_group"`
	Message    string    `json:"message"`
	Otp        string    `json:"otp"`
}

// RequestUsecase defines the interface for the blood request lifecycle
type RequestUsecase interface {
	// RequestOtp issues the one-time password that gates request creation,
	// mailed to the requester's own address.
	RequestOtp(ctx context.Context, requesterID uuid.UUID) error

	// Create verifies the requester's OTP, persists a pending request and
	// pushes a bloodRequest event to the targeted donor.
	Create(ctx context.Context, requesterID uuid.UUID, input *CreateRequestInput) (*entity.BloodRequest, error)

	// IncomingRequests lists requests targeting the caller as donor.
	IncomingRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error)

	// OutgoingRequests lists requests the caller created.
	OutgoingRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// Accept moves a pending request to accepted. Only the targeted donor
	// may accept; the requester is notified on success.
	Accept(ctx context.Context, actingUserID, requestID uuid.UUID) (*entity.BloodRequest, error)

	// Reject moves a pending request to rejected. Only the targeted donor
	// may reject; the requester is notified on success.
	Reject(ctx context.Context, actingUserID, requestID uuid.UUID) (*entity.BloodRequest, error)
}
