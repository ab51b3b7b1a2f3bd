// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bloodcare/internal/domain/entity"
	"bloodcare/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location record is not found.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationRepository defines the interface for donor-location database operations.
type LocationRepository interface {
	// Upsert inserts or replaces the location row keyed by user ID. On
	// conflict the coordinates and address are overwritten while the
	// availability flag keeps its stored value. The persisted row is
	// returned with the owner summary populated.
	Upsert(ctx context.Context, location *entity.DonorLocation) (*entity.DonorLocation, error)

	// FindByUser retrieves the location row for a specific user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DonorLocation, error)

	// FindAll retrieves every location row with owner summaries, for admin views.
	FindAll(ctx context.Context) ([]*entity.DonorLocation, error)

	// FindAvailable retrieves every location row whose owner opted into discovery.
	FindAvailable(ctx context.Context) ([]*entity.DonorLocation, error)

	// FindNearby performs a PostGIS geographic query for available donor
	// locations within radiusMeters of the given point. When bloodGroup is
	// non-empty only matching donors are returned. Results carry the
	// database-computed geodesic distance and owner summaries, capped at limit.
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64, bloodGroup entity.BloodGroup, limit int) ([]*entity.NearbyDonor, error)

	// SetAvailability flips the discovery flag on a user's location row.
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error

	// DeleteByUser removes a user's location row. Missing rows are not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
