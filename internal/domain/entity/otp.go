package entity

import (
	"time"

	"github.com/google/uuid"
)

// OtpPurpose scopes a one-time password to a single flow. Codes issued for
// one purpose never satisfy verification for another.
type OtpPurpose string

const (
	// OtpPurposeBloodRequest gates creation of a blood request.
	OtpPurposeBloodRequest OtpPurpose = "bloodRequest"
	// OtpPurposeAdminApproval gates admin approval of a hospital account.
	OtpPurposeAdminApproval OtpPurpose = "adminApproval"
	// OtpPurposeEmailVerify confirms ownership of a registration email.
	OtpPurposeEmailVerify OtpPurpose = "emailVerify"
)

// String returns the string representation of the OtpPurpose.
func (p OtpPurpose) String() string {
	return string(p)
}

// IsValid checks if the OtpPurpose is a valid value.
func (p OtpPurpose) IsValid() bool {
	switch p {
	case OtpPurposeBloodRequest, OtpPurposeAdminApproval, OtpPurposeEmailVerify:
		return true
	default:
		return false
	}
}

// OtpChallenge is a pending one-time password. At most one challenge exists
// per (email, purpose) pair: issuing a new code replaces the previous one, so
// only the latest code can verify.
type OtpChallenge struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Code      string     `json:"-"` // Six decimal digits, zero padded. Never serialized.
	Purpose   OtpPurpose `json:"purpose"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the challenge can no longer verify at the given
// instant.
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
