package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bloodcare/config"
	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/domain/service"
	mockRepo "bloodcare/internal/mocks/repository"
	mockSvc "bloodcare/internal/mocks/service"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	notifier     *mockSvc.MockNotifier
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLocationService(locationRepo, notifier, logger, &config.Config{})

	return locationServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		notifier:     notifier,
	}
}

func TestLocationService_UpdateLocation_BroadcastsAfterPersist(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := &entity.DonorLocation{
		ID:        uuid.New(),
		UserID:    userID,
		Address:   "12 Park Street",
		Latitude:  22.5726,
		Longitude: 88.3639,
		Available: true,
		Donor: &entity.DonorSummary{
			ID:         userID,
			BloodGroup: entity.BloodGroupOPositive,
		},
		UpdatedAt: time.Now(),
	}

	fx.locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DonorLocation")).
		Run(func(ctx context.Context, location *entity.DonorLocation) {
			assert.Equal(t, userID, location.UserID)
			assert.True(t, location.Available)
		}).
		Return(stored, nil)

	fx.notifier.EXPECT().
		Broadcast(service.EventDonorUpdated, mock.Anything).
		Run(func(event string, payload any) {
			fields, ok := payload.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, stored.ID, fields["id"])
			assert.Equal(t, stored.Address, fields["address"])
		}).
		Return()

	result, err := fx.service.UpdateLocation(ctx, userID, &usecase.UpdateLocationInput{
		Address:   "12 Park Street",
		Latitude:  22.5726,
		Longitude: 88.3639,
	})

	require.NoError(t, err)
	assert.Equal(t, stored, result)
}

func TestLocationService_UpdateLocation_NoBroadcastOnFailure(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	fx.locationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DonorLocation")).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.UpdateLocation(ctx, uuid.New(), &usecase.UpdateLocationInput{
		Latitude:  22.5726,
		Longitude: 88.3639,
	})

	assert.Error(t, err)
	fx.notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestLocationService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too high", 90.5, 0},
		{"latitude too low", -91, 0},
		{"longitude too high", 0, 180.1},
		{"longitude too low", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.UpdateLocation(ctx, uuid.New(), &usecase.UpdateLocationInput{
				Latitude:  tc.lat,
				Longitude: tc.lon,
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
		})
	}

	fx.locationRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestLocationService_FindNearbyDonors_RadiusOverMax(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.FindNearbyDonors(ctx, &usecase.NearbyQueryInput{
		Latitude:  22.5726,
		Longitude: 88.3639,
		RadiusKm:  500,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestLocationService_FindNearbyDonors_UnknownBloodGroup(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	_, err := fx.service.FindNearbyDonors(ctx, &usecase.NearbyQueryInput{
		Latitude:   22.5726,
		Longitude:  88.3639,
		BloodGroup: "Z+",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
}

func TestLocationService_FindNearbyDonors_FiltersAndRanks(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()

	nearbyAt := func(lat float64) *entity.NearbyDonor {
		return &entity.NearbyDonor{
			DonorLocation: entity.DonorLocation{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				Latitude:  lat,
				Longitude: 0,
				Available: true,
			},
		}
	}

	// The database filter is coarse, so it may return a row just outside
	// the radius; the geodesic refilter must drop it.
	far := nearbyAt(0.2)     // roughly 22 km from the center
	mid := nearbyAt(0.05)    // roughly 5.5 km
	near := nearbyAt(0.0099) // roughly 1.1 km

	fx.locationRepo.EXPECT().
		FindNearby(ctx, 0.0, 0.0, 10000.0, entity.BloodGroup(""), 200).
		Return([]*entity.NearbyDonor{far, mid, near}, nil)

	result, err := fx.service.FindNearbyDonors(ctx, &usecase.NearbyQueryInput{
		Latitude:  0,
		Longitude: 0,
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, near.ID, result[0].ID)
	assert.Equal(t, mid.ID, result[1].ID)
	assert.Less(t, result[0].DistanceMeters, result[1].DistanceMeters)
	assert.Greater(t, result[0].DistanceMeters, 0.0)
}

func TestLocationService_SetAvailability_NotFound(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().
		SetAvailability(ctx, userID, false).
		Return(repository.ErrLocationNotFound)

	err := fx.service.SetAvailability(ctx, userID, false)

	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
