package impl

import (
	"context"
	"log/slog"

	"soko/config"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/domain/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type availabilityService struct {
	availabilityRepo repository.AvailabilityRepository
	serviceRepo      repository.ServiceRepository
	search           searcher
	logger           *slog.Logger
}

// NewAvailabilityService creates the slot use cases.
func NewAvailabilityService(
	availabilityRepo repository.AvailabilityRepository,
	serviceRepo repository.ServiceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AvailabilityUsecase {
	return &availabilityService{
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		search:           newSearcher(cfg),
		logger:           logger,
	}
}

// ListMyAvailability always scopes to the caller, admins included.
func (s *availabilityService) ListMyAvailability(ctx context.Context, actor usecase.Actor, input *usecase.SearchInput) (*proximity.Page[*entity.Availability], error) {
	scope := proximity.Scope{OwnerID: &actor.UserID}
	if input != nil {
		scope.ParentID = input.ParentID
	}

	return search(ctx, s.search, s.availabilityRepo, input, proximity.KindAvailability, proximity.PolicyUnfilteredWithoutOrigin, scope)
}

func (s *availabilityService) CreateAvailability(ctx context.Context, actor usecase.Actor, input *usecase.AvailabilityInput) (*entity.Availability, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end_time must be after start_time")
	}

	svc, err := s.serviceRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}
	if err := requireOwner(actor, svc.ProviderID); err != nil {
		return nil, err
	}

	slot := &entity.Availability{
		ID:         newID(),
		ServiceID:  svc.ID,
		ProviderID: svc.ProviderID,
		Location:   svc.Location,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
	}
	if err := s.availabilityRepo.CreateAvailability(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "failed to create availability")
	}

	return slot, nil
}

func (s *availabilityService) DeleteAvailability(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	slot, err := s.availabilityRepo.FindAvailabilityByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find availability")
	}
	if err := requireOwner(actor, slot.ProviderID); err != nil {
		return err
	}

	return errors.Wrap(s.availabilityRepo.DeleteAvailability(ctx, id), "failed to delete availability")
}
