package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a blood request.
type RequestStatus string

const (
	// RequestStatusPending means the request awaits the donor's decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted means the donor agreed to donate.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusRejected means the donor declined.
	RequestStatusRejected RequestStatus = "rejected"
	// RequestStatusCompleted means the donation took place.
	RequestStatusCompleted RequestStatus = "completed"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal state
// change. Pending may become accepted or rejected; accepted may become
// completed. Everything else is final.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAccepted || next == RequestStatusRejected
	case RequestStatusAccepted:
		return next == RequestStatusCompleted
	default:
		return false
	}
}

// DefaultRequestMessage is used when the requester leaves the message blank.
const DefaultRequestMessage = "Urgent blood request"

// BloodRequest is a targeted ask from one user to a specific donor.
type BloodRequest struct {
	ID          uuid.UUID     `json:"id"`
	RequesterID uuid.UUID     `json:"requester_id"` // The user asking for blood.
	DonorID     uuid.UUID     `json:"donor_id"`     // The donor being asked.
	BloodGroup  BloodGroup    `json:"blood_group"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
