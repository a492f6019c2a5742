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
	"gorm.io/plugin/dbresolver"
)

var serviceListing = listingQuery{
	from:     "services AS l",
	columns:  "l.*",
	location: "l.location",
	scope:    scopeColumns{owner: "l.provider_id", category: "l.category_id"},
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a PostGIS backed service store.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) FindWithinRadius(ctx context.Context, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]proximity.Ranked[*entity.Service], int64, error) {
	rows, total, err := findWithinRadius[model.ServiceModel](ctx, repo.db, serviceListing, origin, radiusMeters, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search services")
	}

	items := make([]proximity.Ranked[*entity.Service], 0, len(rows))
	for i := range rows {
		items = append(items, proximity.Ranked[*entity.Service]{
			Entity:         toServiceDomain(&rows[i].Row),
			DistanceMeters: rankedDistance(rows[i].Distance),
		})
	}

	return items, total, nil
}

func (repo *serviceRepository) FindAll(ctx context.Context, scope proximity.Scope, page proximity.PageRequest) ([]*entity.Service, int64, error) {
	rows, total, err := findAll[model.ServiceModel](ctx, repo.db, serviceListing, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	items := make([]*entity.Service, 0, len(rows))
	for i := range rows {
		items = append(items, toServiceDomain(&rows[i]))
	}

	return items, total, nil
}

func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.Service) error {
	m := fromServiceDomain(service)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid provider or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}
	service.CreatedAt = m.CreatedAt
	service.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	row, err := findOne[model.ServiceModel](ctx, repo.db, serviceListing, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service")
	}

	return toServiceDomain(row), nil
}

func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	m := fromServiceDomain(service)
	result := repo.db.WithContext(ctx).
		Model(m).
		Select("title", "description", "category_id", "hourly_rate", "fixed_price", "location", "ai_description", "updated_at").
		Updates(m)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrServiceNotFound
	}
	service.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) SetServiceVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		Update("verified", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to verify service")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrServiceNotFound
	}

	return nil
}

func (repo *serviceRepository) ListServiceTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ServiceModel{}).
		Order("id ASC").
		Pluck("title", &titles).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list service titles")
	}

	return titles, nil
}
