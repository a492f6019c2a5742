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

var businessListing = listingQuery{
	from:     "businesses AS l",
	columns:  "l.*",
	location: "l.location",
	scope:    scopeColumns{owner: "l.owner_id", category: "l.category_id"},
}

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a PostGIS backed business store.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) FindWithinRadius(ctx context.Context, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]proximity.Ranked[*entity.Business], int64, error) {
	rows, total, err := findWithinRadius[model.BusinessModel](ctx, repo.db, businessListing, origin, radiusMeters, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search businesses")
	}

	items := make([]proximity.Ranked[*entity.Business], 0, len(rows))
	for i := range rows {
		items = append(items, proximity.Ranked[*entity.Business]{
			Entity:         toBusinessDomain(&rows[i].Row),
			DistanceMeters: rankedDistance(rows[i].Distance),
		})
	}

	return items, total, nil
}

func (repo *businessRepository) FindAll(ctx context.Context, scope proximity.Scope, page proximity.PageRequest) ([]*entity.Business, int64, error) {
	rows, total, err := findAll[model.BusinessModel](ctx, repo.db, businessListing, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list businesses")
	}

	items := make([]*entity.Business, 0, len(rows))
	for i := range rows {
		items = append(items, toBusinessDomain(&rows[i]))
	}

	return items, total, nil
}

func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	m := fromBusinessDomain(business)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid owner or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	row, err := findOne[model.BusinessModel](ctx, repo.db, businessListing, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business")
	}

	return toBusinessDomain(row), nil
}

func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.Business) error {
	m := fromBusinessDomain(business)
	result := repo.db.WithContext(ctx).
		Model(m).
		Select("name", "description", "category_id", "location", "address", "contact_email", "contact_phone", "updated_at").
		Updates(m)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBusinessNotFound
	}
	business.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *businessRepository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BusinessModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBusinessNotFound
	}

	return nil
}
