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

// Products carry no owner column; ownership is the parent business owner.
var productListing = listingQuery{
	from:     "products AS l",
	joins:    "JOIN businesses AS b ON b.id = l.business_id",
	columns:  "l.*, b.owner_id AS owner_id",
	location: "l.location",
	scope:    scopeColumns{owner: "b.owner_id", parent: "l.business_id", category: "l.category_id"},
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a PostGIS backed product store.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindWithinRadius(ctx context.Context, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]proximity.Ranked[*entity.Product], int64, error) {
	rows, total, err := findWithinRadius[model.ProductModel](ctx, repo.db, productListing, origin, radiusMeters, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search products")
	}

	items := make([]proximity.Ranked[*entity.Product], 0, len(rows))
	for i := range rows {
		items = append(items, proximity.Ranked[*entity.Product]{
			Entity:         toProductDomain(&rows[i].Row),
			DistanceMeters: rankedDistance(rows[i].Distance),
		})
	}

	return items, total, nil
}

func (repo *productRepository) FindAll(ctx context.Context, scope proximity.Scope, page proximity.PageRequest) ([]*entity.Product, int64, error) {
	rows, total, err := findAll[model.ProductModel](ctx, repo.db, productListing, scope, page)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	items := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		items = append(items, toProductDomain(&rows[i]))
	}

	return items, total, nil
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	m := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business or category reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := findOne[model.ProductModel](ctx, repo.db, productListing, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(row), nil
}

func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	m := fromProductDomain(product)
	result := repo.db.WithContext(ctx).
		Model(m).
		Select("name", "description", "price", "category_id", "condition", "location", "stock", "updated_at").
		Updates(m)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	product.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) DeleteProductsByBusiness(ctx context.Context, businessID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "business_id = ?", businessID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete business products")
	}

	return nil
}

func (repo *productRepository) UpdateProductTags(ctx context.Context, id uuid.UUID, tags []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: id}).
		Select("ai_tags").
		Updates(&model.ProductModel{AITags: tags})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product tags")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}
