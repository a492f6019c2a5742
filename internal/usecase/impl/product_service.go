package impl

import (
	"context"
	"log/slog"
	"strings"

	"soko/config"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/domain/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	tagJobs      usecase.TagJobUsecase
	search       searcher
	maxTagText   int
	logger       *slog.Logger
}

// NewProductService creates the product use cases.
func NewProductService(
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
	tagJobs usecase.TagJobUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	maxTagText := 0
	if cfg.Enrichment != nil {
		maxTagText = cfg.Enrichment.MaxTextLength
	}

	return &productService{
		productRepo:  productRepo,
		businessRepo: businessRepo,
		tagJobs:      tagJobs,
		search:       newSearcher(cfg),
		maxTagText:   maxTagText,
		logger:       logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, actor usecase.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	condition := input.Condition
	if condition == "" {
		condition = entity.ConditionNew
	}
	if !condition.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown condition " + string(condition))
	}
	location, err := locationOrUnset(input.Location)
	if err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindBusinessByID(ctx, input.BusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}
	if err := requireOwner(actor, business.OwnerID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          newID(),
		BusinessID:  business.ID,
		OwnerID:     business.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Condition:   condition,
		Location:    location,
		Stock:       input.Stock,
		AITags:      []string{},
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	s.requestTags(ctx, product)

	return product, nil
}

// requestTags submits a tag job for the product. Tagging is best effort and
// never fails the write that triggered it.
func (s *productService) requestTags(ctx context.Context, product *entity.Product) {
	text := product.Description
	if strings.TrimSpace(text) == "" {
		text = product.Name
	}
	if s.maxTagText > 0 {
		if runes := []rune(text); len(runes) > s.maxTagText {
			text = string(runes[:s.maxTagText])
		}
	}

	productID := product.ID
	jobID, err := s.tagJobs.SubmitTagJob(ctx, text, &productID)
	if err != nil {
		s.logger.Warn("Failed to submit product tag job", "productID", product.ID, "error", err)

		return
	}
	s.logger.Debug("Product tag job submitted", "productID", product.ID, "jobID", jobID)
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, input *usecase.SearchInput) (*proximity.Page[*entity.Product], error) {
	scope := proximity.Scope{}
	if input != nil {
		scope.ParentID = input.ParentID
		scope.CategoryID = input.CategoryID
	}

	return search(ctx, s.search, s.productRepo, input, proximity.KindProduct, proximity.PolicyUnfilteredWithoutOrigin, scope)
}

func (s *productService) UpdateProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if err := requireOwner(actor, product.OwnerID); err != nil {
		return nil, err
	}

	retag := false
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil && *input.Description != product.Description {
		product.Description = *input.Description
		retag = true
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Condition != nil {
		if !input.Condition.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown condition " + string(*input.Condition))
		}
		product.Condition = *input.Condition
	}
	if input.Location != nil {
		if err := input.Location.Validate(); err != nil {
			return nil, err
		}
		product.Location = *input.Location
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	if retag {
		s.requestTags(ctx, product)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find product")
	}
	if err := requireOwner(actor, product.OwnerID); err != nil {
		return err
	}

	return errors.Wrap(s.productRepo.DeleteProduct(ctx, id), "failed to delete product")
}
