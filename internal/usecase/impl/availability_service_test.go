package impl

import (
	"context"
	"testing"
	"time"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	mockRepo "soko/internal/mocks/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_CreateAvailability(t *testing.T) {
	ctx := context.Background()
	provider := actorWith(entity.RoleService)
	svc := &entity.Service{ID: uuid.Must(uuid.NewV7()), ProviderID: provider.UserID, Location: nairobi}
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("end must follow start", func(t *testing.T) {
		service := NewAvailabilityService(mockRepo.NewMockAvailabilityRepository(t), mockRepo.NewMockServiceRepository(t), testConfig(), testLogger())

		_, err := service.CreateAvailability(ctx, provider, &usecase.AvailabilityInput{ServiceID: svc.ID, StartTime: start, EndTime: start})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("slot inherits the service location", func(t *testing.T) {
		slots := mockRepo.NewMockAvailabilityRepository(t)
		services := mockRepo.NewMockServiceRepository(t)
		services.EXPECT().FindServiceByID(ctx, svc.ID).Return(svc, nil)
		slots.EXPECT().CreateAvailability(ctx, mock.AnythingOfType("*entity.Availability")).Return(nil)

		slot, err := NewAvailabilityService(slots, services, testConfig(), testLogger()).
			CreateAvailability(ctx, provider, &usecase.AvailabilityInput{ServiceID: svc.ID, StartTime: start, EndTime: start.Add(2 * time.Hour)})
		require.NoError(t, err)
		assert.Equal(t, nairobi, slot.Location)
		assert.Equal(t, provider.UserID, slot.ProviderID)
	})

	t.Run("someone else's service", func(t *testing.T) {
		services := mockRepo.NewMockServiceRepository(t)
		services.EXPECT().FindServiceByID(ctx, svc.ID).Return(svc, nil)

		_, err := NewAvailabilityService(mockRepo.NewMockAvailabilityRepository(t), services, testConfig(), testLogger()).
			CreateAvailability(ctx, actorWith(entity.RoleService), &usecase.AvailabilityInput{ServiceID: svc.ID, StartTime: start, EndTime: start.Add(time.Hour)})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestAvailabilityService_ListMyAvailability(t *testing.T) {
	ctx := context.Background()
	provider := actorWith(entity.RoleService)

	t.Run("ownership and radius are one conjunction", func(t *testing.T) {
		slots := mockRepo.NewMockAvailabilityRepository(t)
		slots.EXPECT().
			FindWithinRadius(ctx, nairobi, 2500.0, proximity.Scope{OwnerID: &provider.UserID}, proximity.PageRequest{Page: 1, PageSize: 20}).
			Return([]proximity.Ranked[*entity.Availability]{}, int64(0), nil)

		_, err := NewAvailabilityService(slots, mockRepo.NewMockServiceRepository(t), testConfig(), testLogger()).
			ListMyAvailability(ctx, provider, &usecase.SearchInput{Params: proximity.RawParams{Lat: "-1.2921", Lng: "36.8219", Radius: "2.5"}})
		require.NoError(t, err)
	})

	t.Run("without origin still scoped to the caller", func(t *testing.T) {
		slots := mockRepo.NewMockAvailabilityRepository(t)
		slots.EXPECT().
			FindAll(ctx, proximity.Scope{OwnerID: &provider.UserID}, proximity.PageRequest{Page: 1, PageSize: 20}).
			Return([]*entity.Availability{}, int64(0), nil)

		_, err := NewAvailabilityService(slots, mockRepo.NewMockServiceRepository(t), testConfig(), testLogger()).
			ListMyAvailability(ctx, provider, &usecase.SearchInput{})
		require.NoError(t, err)
	})
}

func TestAvailabilityService_DeleteAvailability(t *testing.T) {
	ctx := context.Background()
	provider := actorWith(entity.RoleService)
	id := uuid.Must(uuid.NewV7())
	slots := mockRepo.NewMockAvailabilityRepository(t)
	slots.EXPECT().FindAvailabilityByID(ctx, id).Return(&entity.Availability{ID: id, ProviderID: provider.UserID}, nil)
	slots.EXPECT().DeleteAvailability(ctx, id).Return(nil)

	err := NewAvailabilityService(slots, mockRepo.NewMockServiceRepository(t), testConfig(), testLogger()).
		DeleteAvailability(ctx, provider, id)
	require.NoError(t, err)
}
