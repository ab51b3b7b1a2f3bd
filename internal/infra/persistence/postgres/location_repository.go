package postgres

import (
	"context"

	"bloodcare/internal/domain/entity"
	domainerrors "bloodcare/internal/domain/errors"
	"bloodcare/internal/domain/repository"
	"bloodcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert inserts or replaces the location row keyed by user ID. The conflict
// update deliberately leaves the available column untouched so an unavailable
// donor stays hidden when their device reports a new position.
func (repo *locationRepository) Upsert(ctx context.Context, location *entity.DonorLocation) (*entity.DonorLocation, error) {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"address":    locationM.Address,
				"latitude":   locationM.Latitude,
				"longitude":  locationM.Longitude,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	// Re-read through the join so the caller gets the stored availability
	// flag and the owner summary regardless of insert or update path.
	return repo.FindByUser(ctx, location.UserID)
}

// FindByUser retrieves the location row for a specific user.
func (repo *locationRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.DonorLocation, error) {
	var row locationWithOwner

	if err := repo.db.WithContext(ctx).
		Raw(locationSelect+` WHERE l.user_id = ?`, userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return row.toDomain(), nil
}

// FindAll retrieves every location row with owner summaries.
func (repo *locationRepository) FindAll(ctx context.Context) ([]*entity.DonorLocation, error) {
	return repo.findLocations(ctx, locationSelect+` ORDER BY l.updated_at DESC`)
}

// FindAvailable retrieves every location row whose owner opted into discovery.
func (repo *locationRepository) FindAvailable(ctx context.Context) ([]*entity.DonorLocation, error) {
	return repo.findLocations(ctx, locationSelect+` WHERE l.available = true ORDER BY l.updated_at DESC`)
}

// FindNearby performs a PostGIS geographic query for available donor
// locations within radiusMeters of the given point.
func (repo *locationRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, bloodGroup entity.BloodGroup, limit int) ([]*entity.NearbyDonor, error) {
	var rows []*nearbyLocationRow

	// Use PostGIS ST_DWithin on geography for an index-assisted radius
	// filter, with ST_Distance supplying the geodesic ranking distance.
	query := `
		SELECT l.id, l.user_id, l.address, l.latitude, l.longitude, l.available,
		       l.created_at, l.updated_at,
		       u.name AS donor_name, u.email AS donor_email, u.blood_group AS donor_blood_group,
		       ST_Distance(
		         ST_SetSRID(ST_MakePoint(l.longitude, l.latitude), 4326)::geography,
		         ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       ) AS distance_meters
		FROM donor_locations l
		JOIN users u ON u.id = l.user_id
		WHERE l.available = true
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(l.longitude, l.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
	`
	args := []any{lon, lat, lon, lat, radiusMeters}

	if bloodGroup != "" {
		query += ` AND LOWER(u.blood_group) = LOWER(?)`
		args = append(args, bloodGroup.String())
	}

	query += ` ORDER BY distance_meters ASC LIMIT ?`
	args = append(args, limit)

	if err := repo.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby donors")
	}

	donors := make([]*entity.NearbyDonor, 0, len(rows))
	for _, row := range rows {
		donors = append(donors, row.toDomain())
	}

	return donors, nil
}

// SetAvailability flips the discovery flag on a user's location row.
func (repo *locationRepository) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonorLocationModel{}).
		Where("user_id = ?", userID).
		Update("available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteByUser removes a user's location row. Missing rows are not an error.
func (repo *locationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.DonorLocationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete location by user")
	}

	return nil
}

func (repo *locationRepository) findLocations(ctx context.Context, query string, args ...any) ([]*entity.DonorLocation, error) {
	var rows []*locationWithOwner

	if err := repo.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	locations := make([]*entity.DonorLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toDomain())
	}

	return locations, nil
}

// locationSelect joins locations with their owners so every read returns the
// donor summary in one round trip.
const locationSelect = `
	SELECT l.id, l.user_id, l.address, l.latitude, l.longitude, l.available,
	       l.created_at, l.updated_at,
	       u.name AS donor_name, u.email AS donor_email, u.blood_group AS donor_blood_group
	FROM donor_locations l
	JOIN users u ON u.id = l.user_id
`

// locationWithOwner is the scan target for the joined location query.
type locationWithOwner struct {
	model.DonorLocationModel
	DonorName       string
	DonorEmail      string
	DonorBloodGroup string
}

// nearbyLocationRow additionally carries the database-computed distance.
type nearbyLocationRow struct {
	locationWithOwner
	DistanceMeters float64
}

// --- Mapper Functions ---

func (row *locationWithOwner) toDomain() *entity.DonorLocation {
	if row == nil {
		return nil
	}

	return &entity.DonorLocation{
		ID:        row.ID,
		UserID:    row.UserID,
		Address:   row.Address,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		Available: row.Available,
		Donor: &entity.DonorSummary{
			ID:         row.UserID,
			Name:       row.DonorName,
			Email:      row.DonorEmail,
			BloodGroup: entity.BloodGroup(row.DonorBloodGroup),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (row *nearbyLocationRow) toDomain() *entity.NearbyDonor {
	if row == nil {
		return nil
	}

	return &entity.NearbyDonor{
		DonorLocation:  *row.locationWithOwner.toDomain(),
		DistanceMeters: row.DistanceMeters,
	}
}

// fromLocationDomain converts a domain DonorLocation entity to a GORM DonorLocationModel.
func fromLocationDomain(data *entity.DonorLocation) *model.DonorLocationModel {
	if data == nil {
		return nil
	}

	return &model.DonorLocationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
