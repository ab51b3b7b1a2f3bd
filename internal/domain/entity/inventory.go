package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordType marks the direction of an inventory movement.
type RecordType string

const (
	// RecordTypeIn records blood entering the bank (a donation).
	RecordTypeIn RecordType = "in"
	// RecordTypeOut records blood leaving the bank (issued to a hospital).
	RecordTypeOut RecordType = "out"
)

// String returns the string representation of the RecordType.
func (t RecordType) String() string {
	return string(t)
}

// IsValid checks if the RecordType is a valid value.
func (t RecordType) IsValid() bool {
	return t == RecordTypeIn || t == RecordTypeOut
}

// InventoryRecord is an append-only ledger entry for an organisation's blood
// stock. Stock levels are derived by summing records, never stored directly.
type InventoryRecord struct {
	ID             uuid.UUID  `json:"id"`
	OrganisationID uuid.UUID  `json:"organisation_id"`
	RecordType     RecordType `json:"record_type"`
	BloodGroup     BloodGroup `json:"blood_group"`
	Quantity       int64      `json:"quantity"`              // Millilitres; always positive.
	DonorID        *uuid.UUID `json:"donor_id,omitempty"`    // Set on "in" records.
	HospitalID     *uuid.UUID `json:"hospital_id,omitempty"` // Set on "out" records.
	CreatedAt      time.Time  `json:"created_at"`
}

// BloodGroupTotal aggregates inbound and outbound volume for one blood group.
type BloodGroupTotal struct {
	BloodGroup BloodGroup `json:"blood_group"`
	TotalIn    int64      `json:"total_in"`
	TotalOut   int64      `json:"total_out"`
}

// Stock returns the currently held volume for the group.
func (t *BloodGroupTotal) Stock() int64 {
	return t.TotalIn - t.TotalOut
}
