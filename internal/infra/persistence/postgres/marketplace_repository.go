package postgres

import (
	"context"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/repository"
	"soko/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category store.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	m := &model.CategoryModel{ID: category.ID, Name: category.Name, Icon: category.Icon}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("category " + category.Name + " already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return nil
}

func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.db.WithContext(ctx).Take(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&m), nil
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, toCategoryDomain(&rows[i]))
	}

	return categories, nil
}

type serviceRequestRepository struct {
	db *gorm.DB
}

// NewServiceRequestRepository creates the booking store.
func NewServiceRequestRepository(db *gorm.DB) repository.ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (repo *serviceRequestRepository) CreateServiceRequest(ctx context.Context, request *entity.ServiceRequest) error {
	m := &model.ServiceRequestModel{
		ID:            request.ID,
		ServiceID:     request.ServiceID,
		ProviderID:    request.ProviderID,
		CustomerID:    request.CustomerID,
		Message:       request.Message,
		Status:        string(request.Status),
		ScheduledDate: request.ScheduledDate,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service request")
	}
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *serviceRequestRepository) FindServiceRequestByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	var m model.ServiceRequestModel
	if err := repo.db.WithContext(ctx).Take(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrServiceRequestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service request")
	}

	return toServiceRequestDomain(&m), nil
}

// UpdateServiceRequestStatus is a compare-and-set on the status column so
// two concurrent transitions cannot both succeed.
func (repo *serviceRequestRepository) UpdateServiceRequestStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceRequestModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service request")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindServiceRequestByID(ctx, id); err != nil {
		return err
	}

	return domainerrors.ErrInvalidStatusTransition.WithDetails(string(from) + " -> " + string(to))
}

func (repo *serviceRequestRepository) ListServiceRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ServiceRequest, error) {
	return repo.list(ctx, "customer_id = ?", customerID)
}

func (repo *serviceRequestRepository) ListServiceRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ServiceRequest, error) {
	return repo.list(ctx, "provider_id = ?", providerID)
}

func (repo *serviceRequestRepository) list(ctx context.Context, query string, arg any) ([]*entity.ServiceRequest, error) {
	var rows []model.ServiceRequestModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where(query, arg).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list service requests")
	}

	requests := make([]*entity.ServiceRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, toServiceRequestDomain(&rows[i]))
	}

	return requests, nil
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates the review store.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	m := &model.ReviewModel{
		ID:         review.ID,
		ReviewerID: review.ReviewerID,
		TargetType: string(review.TargetType),
		TargetID:   review.TargetID,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}
	review.CreatedAt = m.CreatedAt

	return nil
}

func (repo *reviewRepository) ListReviewsByTarget(ctx context.Context, target entity.ReviewTarget, targetID uuid.UUID) ([]*entity.Review, error) {
	var rows []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("target_type = ? AND target_id = ?", string(target), targetID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, toReviewDomain(&rows[i]))
	}

	return reviews, nil
}
