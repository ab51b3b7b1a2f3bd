package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonorLocation is a user's last-known point on the map. The system keeps at
// most one location per user: every new position sample replaces the previous
// one (upsert semantics), so the index stays O(active users) no matter how
// often clients report.
type DonorLocation struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`         // Owning user; unique across the index.
	Address   string        `json:"address"`         // Free-text address label supplied by the client.
	Latitude  float64       `json:"latitude"`        // WGS84 decimal degrees, [-90, 90].
	Longitude float64       `json:"longitude"`       // WGS84 decimal degrees, [-180, 180].
	Available bool          `json:"available"`       // Donor opt-in to being discoverable; defaults true on first insert.
	Donor     *DonorSummary `json:"donor,omitempty"` // Owner display fields; populated by joined reads only.
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NearbyDonor is a location bundled with its great-circle distance from the
// query center. Used by the nearby-donor query so callers get the location,
// the owner profile, and the ranking distance in one result.
type NearbyDonor struct {
	DonorLocation
	DistanceMeters float64 `json:"distance_meters"`
}
