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

type serviceService struct {
	serviceRepo repository.ServiceRepository
	search      searcher
	logger      *slog.Logger
}

// NewServiceService creates the use cases for published services.
func NewServiceService(serviceRepo repository.ServiceRepository, cfg *config.Config, logger *slog.Logger) usecase.ServiceUsecase {
	return &serviceService{
		serviceRepo: serviceRepo,
		search:      newSearcher(cfg),
		logger:      logger,
	}
}

func validateRates(hourly, fixed *float64) error {
	if hourly != nil && *hourly < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("hourly_rate must not be negative")
	}
	if fixed != nil && *fixed < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("fixed_price must not be negative")
	}

	return nil
}

func (s *serviceService) CreateService(ctx context.Context, actor usecase.Actor, input *usecase.ServiceInput) (*entity.Service, error) {
	if err := requireRole(actor, entity.RoleService); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if err := validateRates(input.HourlyRate, input.FixedPrice); err != nil {
		return nil, err
	}
	location, err := locationOrUnset(input.Location)
	if err != nil {
		return nil, err
	}

	svc := &entity.Service{
		ID:          newID(),
		ProviderID:  actor.UserID,
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		HourlyRate:  input.HourlyRate,
		FixedPrice:  input.FixedPrice,
		Location:    location,
	}
	if err := s.serviceRepo.CreateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}
	s.logger.Debug("Service created", "serviceID", svc.ID, "providerID", actor.UserID)

	return svc, nil
}

func (s *serviceService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

func (s *serviceService) ListServices(ctx context.Context, input *usecase.SearchInput) (*proximity.Page[*entity.Service], error) {
	scope := proximity.Scope{}
	if input != nil {
		scope.CategoryID = input.CategoryID
	}

	return search(ctx, s.search, s.serviceRepo, input, proximity.KindService, proximity.PolicyUnfilteredWithoutOrigin, scope)
}

func (s *serviceService) ListMyServices(ctx context.Context, actor usecase.Actor, input *usecase.SearchInput) (*proximity.Page[*entity.Service], error) {
	scope := proximity.Scope{OwnerID: &actor.UserID}
	if input != nil {
		scope.CategoryID = input.CategoryID
	}

	return search(ctx, s.search, s.serviceRepo, input, proximity.KindService, proximity.PolicyUnfilteredWithoutOrigin, scope)
}

func (s *serviceService) UpdateService(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}
	if err := requireOwner(actor, svc.ProviderID); err != nil {
		return nil, err
	}
	if err := validateRates(input.HourlyRate, input.FixedPrice); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
		}
		svc.Title = *input.Title
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.CategoryID != nil {
		svc.CategoryID = input.CategoryID
	}
	if input.HourlyRate != nil {
		svc.HourlyRate = input.HourlyRate
	}
	if input.FixedPrice != nil {
		svc.FixedPrice = input.FixedPrice
	}
	if input.Location != nil {
		if err := input.Location.Validate(); err != nil {
			return nil, err
		}
		svc.Location = *input.Location
	}

	if err := s.serviceRepo.UpdateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return svc, nil
}

func (s *serviceService) DeleteService(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	svc, err := s.serviceRepo.FindServiceByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find service")
	}
	if err := requireOwner(actor, svc.ProviderID); err != nil {
		return err
	}

	return errors.Wrap(s.serviceRepo.DeleteService(ctx, id), "failed to delete service")
}

func (s *serviceService) VerifyService(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}
	if err := s.serviceRepo.SetServiceVerified(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to verify service")
	}
	s.logger.Info("Service verified", "serviceID", id, "adminID", actor.UserID)

	return nil
}
