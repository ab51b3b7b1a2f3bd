// Package usecase defines the application-level interfaces driving the domain.
package usecase

import (
	"context"

	"bloodcare/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateLocationInput represents the input for reporting a donor position
type UpdateLocationInput struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyQueryInput represents the input for the nearby-donor search
type NearbyQueryInput struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RadiusKm   float64 `json:"radius_km"`   // Zero means the configured default.
	BloodGroup string  `json:"blood_group"` // Empty means any group.
}

// LocationUsecase defines the interface for the donor geo index use cases
type LocationUsecase interface {
	// UpdateLocation validates and persists a position sample, then
	// broadcasts the change to connected clients. Returns the stored record.
	UpdateLocation(ctx context.Context, userID uuid.UUID, input *UpdateLocationInput) (*entity.DonorLocation, error)

	// GetLocation retrieves the caller's own location record.
	GetLocation(ctx context.Context, userID uuid.UUID) (*entity.DonorLocation, error)

	// ListAllLocations retrieves every location record, for admin views.
	ListAllLocations(ctx context.Context) ([]*entity.DonorLocation, error)

	// ListAvailableDonors retrieves every discoverable donor location.
	ListAvailableDonors(ctx context.Context) ([]*entity.DonorLocation, error)

	// FindNearbyDonors searches available donors around a point, ranked by
	// distance ascending.
	FindNearbyDonors(ctx context.Context, input *NearbyQueryInput) ([]*entity.NearbyDonor, error)

	// SetAvailability flips the caller's discovery opt-in.
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error

	// DeleteLocation removes the caller's location record.
	DeleteLocation(ctx context.Context, userID uuid.UUID) error
}
