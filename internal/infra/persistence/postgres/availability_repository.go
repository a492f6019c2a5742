package postgres

import (
	"context"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/domain/repository"
	"soko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Slots have no location; distance and ownership come from the service.
var availabilityListing = listingQuery{
	from:     "availabilities AS l",
	joins:    "JOIN services AS s ON s.id = l.service_id",
	columns:  "l.*, s.provider_id AS provider_id, s.location AS location",
	location: "s.location",
	scope:    scopeColumns{owner: "s.provider_id", parent: "l.service_id"},
}

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a PostGIS backed slot store.
func NewAvailabilityRepository(db *gorm.DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (repo *availabilityRepository) FindWithinRadius(ctx context.Context, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]proximity.Ranked[*entity.Availability], int64, error) {
	rows, total, err := findWithinRadius[model.AvailabilityModel](ctx, repo.db, availabilityListing, origin, radiusMeters, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search availability")
	}

	items := make([]proximity.Ranked[*entity.Availability], 0, len(rows))
	for i := range rows {
		items = append(items, proximity.Ranked[*entity.Availability]{
			Entity:         toAvailabilityDomain(&rows[i].Row),
			DistanceMeters: rankedDistance(rows[i].Distance),
		})
	}

	return items, total, nil
}

func (repo *availabilityRepository) FindAll(ctx context.Context, scope proximity.Scope, page proximity.PageRequest) ([]*entity.Availability, int64, error) {
	rows, total, err := findAll[model.AvailabilityModel](ctx, repo.db, availabilityListing, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list availability")
	}

	items := make([]*entity.Availability, 0, len(rows))
	for i := range rows {
		items = append(items, toAvailabilityDomain(&rows[i]))
	}

	return items, total, nil
}

func (repo *availabilityRepository) CreateAvailability(ctx context.Context, slot *entity.Availability) error {
	m := &model.AvailabilityModel{
		ID:        slot.ID,
		ServiceID: slot.ServiceID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create availability")
	}
	slot.CreatedAt = m.CreatedAt

	return nil
}

func (repo *availabilityRepository) FindAvailabilityByID(ctx context.Context, id uuid.UUID) (*entity.Availability, error) {
	row, err := findOne[model.AvailabilityModel](ctx, repo.db, availabilityListing, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAvailabilityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find availability")
	}

	return toAvailabilityDomain(row), nil
}

func (repo *availabilityRepository) DeleteAvailability(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AvailabilityModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete availability")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAvailabilityNotFound
	}

	return nil
}
