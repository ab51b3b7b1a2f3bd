package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a donor, hospital,
// organisation, or admin account.
type User struct {
	ID               uuid.UUID      `json:"id"`                 // The unique identifier for the user.
	Role             Role           `json:"role"`               // Account type; determines which flows the user may enter.
	Name             string         `json:"name"`               // Display name (person, hospital, or organisation name).
	Email            string         `json:"email"`              // Primary contact email, used as the login identifier.
	PasswordHash     string         `json:"-"`                  // Bcrypt hash; never serialized.
	Phone            string         `json:"phone"`              // Contact phone number.
	Age              int            `json:"age"`                // Donor age; donors must be at least 16.
	Pincode          string         `json:"pincode"`            // Postal code used for coarse region grouping.
	BloodGroup       BloodGroup     `json:"blood_group"`        // Donor blood group; empty for non-donor roles.
	Agree            bool           `json:"agree"`              // Consent to the donation terms, captured at registration.
	LastDonationDate *time.Time     `json:"last_donation_date"` // Most recent donation; nil if the user never donated.
	Eligible         bool           `json:"eligible"`           // Whether the donor is currently eligible to donate.
	IsVerified       bool           `json:"is_verified"`        // Whether the email address was confirmed via OTP.
	ApprovalStatus   ApprovalStatus `json:"approval_status"`    // Admin-approval state; only meaningful for hospitals.
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Summary returns the public display fields of the user, safe to embed in
// broadcast payloads and joined query results.
func (u *User) Summary() *DonorSummary {
	return &DonorSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		BloodGroup: u.BloodGroup,
	}
}

// DonorSummary carries the owner display fields exposed alongside location
// records. It deliberately excludes credentials and contact details beyond
// email.
type DonorSummary struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	BloodGroup BloodGroup `json:"blood_group"`
}
