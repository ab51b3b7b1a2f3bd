package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"bloodcare/config"
	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/errors"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	defaultRadiusKm   = 10.0
	defaultMaxRadius  = 100.0
	defaultMaxResults = 200
)

type locationService struct {
	locationRepo repository.LocationRepository
	notifier     service.Notifier
	logger       *slog.Logger
	config       *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	notifier service.Notifier,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.LocationUsecase {
	// If Location is not configured, provide a default configuration
	if cfg.Location == nil {
		cfg.Location = &config.LocationConfig{
			DefaultRadiusKm: defaultRadiusKm,
			MaxRadiusKm:     defaultMaxRadius,
			MaxResults:      defaultMaxResults,
		}
	}

	return &locationService{
		locationRepo: locationRepo,
		notifier:     notifier,
		logger:       logger,
		config:       cfg,
	}
}

// UpdateLocation validates and persists a position sample, then broadcasts
// the change. The broadcast happens only after the write succeeds so clients
// never see a position the database does not hold.
func (s *locationService) UpdateLocation(ctx context.Context, userID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.DonorLocation, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	now := time.Now()
	stored, err := s.locationRepo.Upsert(ctx, &entity.DonorLocation{
		UserID:    userID,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "upsert location")
	}

	s.notifier.Broadcast(service.EventDonorUpdated, map[string]any{
		"id": stored.ID,
		"user": map[string]any{
			"id":         stored.UserID,
			"bloodGroup": summaryBloodGroup(stored.Donor),
		},
		"address": stored.Address,
		"location": map[string]float64{
			"latitude":  stored.Latitude,
			"longitude": stored.Longitude,
		},
		"updatedAt": stored.UpdatedAt,
	})

	return stored, nil
}

// GetLocation retrieves the caller's own location record.
func (s *locationService) GetLocation(ctx context.Context, userID uuid.UUID) (*entity.DonorLocation, error) {
	location, err := s.locationRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "find location by user")
	}

	return location, nil
}

// ListAllLocations retrieves every location record.
func (s *locationService) ListAllLocations(ctx context.Context) ([]*entity.DonorLocation, error) {
	locations, err := s.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find all locations")
	}

	return locations, nil
}

// ListAvailableDonors retrieves every discoverable donor location.
func (s *locationService) ListAvailableDonors(ctx context.Context) ([]*entity.DonorLocation, error) {
	locations, err := s.locationRepo.FindAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find available locations")
	}

	return locations, nil
}

// FindNearbyDonors searches available donors around a point. The database
// does the coarse radius filter; distances are then recomputed with a
// geodesic formula, refiltered and sorted so ranking does not depend on the
// database's distance semantics.
func (s *locationService) FindNearbyDonors(ctx context.Context, input *usecase.NearbyQueryInput) ([]*entity.NearbyDonor, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	radiusKm := input.RadiusKm
	if radiusKm == 0 {
		radiusKm = s.config.Location.DefaultRadiusKm
	}
	if radiusKm < 0 || radiusKm > s.config.Location.MaxRadiusKm {
		return nil, domainerrors.ErrInvalidRadius
	}

	var bloodGroup entity.BloodGroup
	if input.BloodGroup != "" {
		parsed, ok := entity.ParseBloodGroup(input.BloodGroup)
		if !ok {
			return nil, domainerrors.ErrInvalidBloodGroup
		}
		bloodGroup = parsed
	}

	radiusMeters := radiusKm * 1000
	donors, err := s.locationRepo.FindNearby(ctx, input.Latitude, input.Longitude, radiusMeters, bloodGroup, s.config.Location.MaxResults)
	if err != nil {
		return nil, errors.Wrap(err, "find nearby donors")
	}

	center := orb.Point{input.Longitude, input.Latitude}
	ranked := make([]*entity.NearbyDonor, 0, len(donors))
	for _, donor := range donors {
		distance := geo.Distance(center, orb.Point{donor.Longitude, donor.Latitude})
		if distance > radiusMeters {
			continue
		}
		donor.DistanceMeters = distance
		ranked = append(ranked, donor)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > s.config.Location.MaxResults {
		ranked = ranked[:s.config.Location.MaxResults]
	}

	return ranked, nil
}

// SetAvailability flips the caller's discovery opt-in.
func (s *locationService) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	if err := s.locationRepo.SetAvailability(ctx, userID, available); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "set location availability")
	}

	return nil
}

// DeleteLocation removes the caller's location record.
func (s *locationService) DeleteLocation(ctx context.Context, userID uuid.UUID) error {
	if err := s.locationRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "delete location")
	}

	return nil
}

// validateCoordinates rejects NaN, infinities and out-of-range values before
// they reach the database or a broadcast payload.
func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return domainerrors.ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domainerrors.ErrInvalidCoordinates
	}

	return nil
}

func summaryBloodGroup(donor *entity.DonorSummary) string {
	if donor == nil {
		return ""
	}

	return donor.BloodGroup.String()
}
