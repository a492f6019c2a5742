package impl

import (
	"context"
	"testing"

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

func TestServiceService_CreateService(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   usecase.Actor
		input   usecase.ServiceInput
		wantErr error
	}{
		{
			name:    "business accounts cannot publish services",
			actor:   actorWith(entity.RoleBusiness),
			input:   usecase.ServiceInput{Title: "Plumbing"},
			wantErr: domainerrors.ErrListingRoleRequired,
		},
		{
			name:    "title required",
			actor:   actorWith(entity.RoleService),
			input:   usecase.ServiceInput{Title: "  "},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative rate",
			actor:   actorWith(entity.RoleService),
			input:   usecase.ServiceInput{Title: "Plumbing", HourlyRate: ptr(-1.0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewServiceService(mockRepo.NewMockServiceRepository(t), testConfig(), testLogger())

			_, err := service.CreateService(ctx, tt.actor, &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("provider is the caller", func(t *testing.T) {
		repo := mockRepo.NewMockServiceRepository(t)
		provider := actorWith(entity.RoleService)
		repo.EXPECT().CreateService(ctx, mock.AnythingOfType("*entity.Service")).Return(nil)

		svc, err := NewServiceService(repo, testConfig(), testLogger()).
			CreateService(ctx, provider, &usecase.ServiceInput{Title: "Plumbing", Location: &nairobi})
		require.NoError(t, err)
		assert.Equal(t, provider.UserID, svc.ProviderID)
		assert.Equal(t, nairobi, svc.Location)
	})
}

func TestServiceService_ListMyServices_ConjunctionWithRadius(t *testing.T) {
	repo := mockRepo.NewMockServiceRepository(t)
	ctx := context.Background()
	provider := actorWith(entity.RoleService)

	repo.EXPECT().
		FindWithinRadius(ctx, nairobi, 20000.0, proximity.Scope{OwnerID: &provider.UserID}, proximity.PageRequest{Page: 1, PageSize: 20}).
		Return([]proximity.Ranked[*entity.Service]{}, int64(0), nil)

	page, err := NewServiceService(repo, testConfig(), testLogger()).ListMyServices(ctx, provider, &usecase.SearchInput{
		Params: proximity.RawParams{Lat: "-1.2921", Lng: "36.8219"},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestServiceService_ListServices_NoOriginIsUnfiltered(t *testing.T) {
	repo := mockRepo.NewMockServiceRepository(t)
	ctx := context.Background()
	all := []*entity.Service{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	repo.EXPECT().
		FindAll(ctx, proximity.Scope{}, proximity.PageRequest{Page: 1, PageSize: 20}).
		Return(all, int64(3), nil)

	page, err := NewServiceService(repo, testConfig(), testLogger()).ListServices(ctx, &usecase.SearchInput{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(3), page.Total)
}

func TestServiceService_VerifyService(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("admin only", func(t *testing.T) {
		service := NewServiceService(mockRepo.NewMockServiceRepository(t), testConfig(), testLogger())

		err := service.VerifyService(ctx, actorWith(entity.RoleService), id)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin verifies", func(t *testing.T) {
		repo := mockRepo.NewMockServiceRepository(t)
		repo.EXPECT().SetServiceVerified(ctx, id, true).Return(nil)

		err := NewServiceService(repo, testConfig(), testLogger()).VerifyService(ctx, actorWith(entity.RoleAdmin), id)
		require.NoError(t, err)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := mockRepo.NewMockServiceRepository(t)
		repo.EXPECT().SetServiceVerified(ctx, id, true).Return(domainerrors.ErrServiceNotFound)

		err := NewServiceService(repo, testConfig(), testLogger()).VerifyService(ctx, actorWith(entity.RoleAdmin), id)
		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})
}

func TestServiceService_UpdateService_OwnerOnly(t *testing.T) {
	repo := mockRepo.NewMockServiceRepository(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	repo.EXPECT().FindServiceByID(ctx, id).Return(&entity.Service{ID: id, ProviderID: uuid.Must(uuid.NewV7())}, nil)

	_, err := NewServiceService(repo, testConfig(), testLogger()).
		UpdateService(ctx, actorWith(entity.RoleService), id, &usecase.UpdateServiceInput{Title: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
