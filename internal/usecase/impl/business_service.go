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

type businessService struct {
	businessRepo repository.BusinessRepository
	txManager    repository.TransactionManager
	search       searcher
	logger       *slog.Logger
}

// NewBusinessService creates the business use cases.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		txManager:    txManager,
		search:       newSearcher(cfg),
		logger:       logger,
	}
}

func (s *businessService) CreateBusiness(ctx context.Context, actor usecase.Actor, input *usecase.BusinessInput) (*entity.Business, error) {
	if err := requireRole(actor, entity.RoleBusiness); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	location, err := locationOrUnset(input.Location)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		ID:           newID(),
		OwnerID:      actor.UserID,
		Name:         input.Name,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		Location:     location,
		Address:      input.Address,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}
	if err := s.businessRepo.CreateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}
	s.logger.Debug("Business created", "businessID", business.ID, "ownerID", actor.UserID)

	return business, nil
}

func (s *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, input *usecase.SearchInput) (*proximity.Page[*entity.Business], error) {
	scope := proximity.Scope{}
	if input != nil {
		scope.CategoryID = input.CategoryID
	}

	return search(ctx, s.search, s.businessRepo, input, proximity.KindBusiness, proximity.PolicyUnfilteredWithoutOrigin, scope)
}

func (s *businessService) NearbyBusinesses(ctx context.Context, input *usecase.SearchInput) (*proximity.Page[*entity.Business], error) {
	return search(ctx, s.search, s.businessRepo, input, proximity.KindNearbyBusiness, proximity.PolicyEmptyWithoutOrigin, proximity.Scope{})
}

func (s *businessService) UpdateBusiness(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}
	if err := requireOwner(actor, business.OwnerID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		business.Name = *input.Name
	}
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.CategoryID != nil {
		business.CategoryID = input.CategoryID
	}
	if input.Location != nil {
		if err := input.Location.Validate(); err != nil {
			return nil, err
		}
		business.Location = *input.Location
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.ContactEmail != nil {
		business.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		business.ContactPhone = *input.ContactPhone
	}

	if err := s.businessRepo.UpdateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// DeleteBusiness removes the products first so no product outlives its business.
func (s *businessService) DeleteBusiness(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	business, err := s.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find business")
	}
	if err := requireOwner(actor, business.OwnerID); err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().DeleteProductsByBusiness(ctx, id); err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(repoFactory.NewBusinessRepository().DeleteBusiness(ctx, id))
	})
	if err != nil {
		s.logger.Error("Failed to delete business", "businessID", id, "error", err)

		return errors.Wrap(err, "failed to delete business")
	}

	return nil
}
