package impl

import (
	"context"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	mockRepo "soko/internal/mocks/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		_, err := NewCategoryService(mockRepo.NewMockCategoryRepository(t)).
			CreateCategory(ctx, actorWith(entity.RoleBusiness), "Tools", "")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("default icon", func(t *testing.T) {
		repo := mockRepo.NewMockCategoryRepository(t)
		repo.EXPECT().CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

		category, err := NewCategoryService(repo).CreateCategory(ctx, actorWith(entity.RoleAdmin), " Tools ", "")
		require.NoError(t, err)
		assert.Equal(t, "Tools", category.Name)
		assert.Equal(t, entity.DefaultCategoryIcon, category.Icon)
	})
}

func TestServiceRequestService_CreateServiceRequest(t *testing.T) {
	ctx := context.Background()
	customer := actorWith(entity.RoleCustomer)
	svc := &entity.Service{ID: uuid.Must(uuid.NewV7()), ProviderID: uuid.Must(uuid.NewV7())}

	t.Run("starts pending with the service provider", func(t *testing.T) {
		requests := mockRepo.NewMockServiceRequestRepository(t)
		services := mockRepo.NewMockServiceRepository(t)
		services.EXPECT().FindServiceByID(ctx, svc.ID).Return(svc, nil)
		requests.EXPECT().CreateServiceRequest(ctx, mock.AnythingOfType("*entity.ServiceRequest")).Return(nil)

		request, err := NewServiceRequestService(requests, services, testLogger()).
			CreateServiceRequest(ctx, customer, &usecase.ServiceRequestInput{ServiceID: svc.ID, Message: "leaking tap"})
		require.NoError(t, err)
		assert.Equal(t, entity.RequestPending, request.Status)
		assert.Equal(t, svc.ProviderID, request.ProviderID)
		assert.Equal(t, customer.UserID, request.CustomerID)
	})

	t.Run("provider cannot book own service", func(t *testing.T) {
		services := mockRepo.NewMockServiceRepository(t)
		services.EXPECT().FindServiceByID(ctx, svc.ID).Return(svc, nil)
		provider := usecase.Actor{UserID: svc.ProviderID, Roles: entity.Roles{entity.RoleService}}

		_, err := NewServiceRequestService(mockRepo.NewMockServiceRequestRepository(t), services, testLogger()).
			CreateServiceRequest(ctx, provider, &usecase.ServiceRequestInput{ServiceID: svc.ID})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestServiceRequestService_UpdateServiceRequestStatus(t *testing.T) {
	ctx := context.Background()
	provider := actorWith(entity.RoleService)
	id := uuid.Must(uuid.NewV7())
	pending := func() *entity.ServiceRequest {
		return &entity.ServiceRequest{ID: id, ProviderID: provider.UserID, Status: entity.RequestPending}
	}

	tests := []struct {
		name    string
		actor   usecase.Actor
		to      entity.RequestStatus
		wantErr error
	}{
		{name: "accept", actor: provider, to: entity.RequestAccepted},
		{name: "reject", actor: provider, to: entity.RequestRejected},
		{name: "cannot complete a pending request", actor: provider, to: entity.RequestCompleted, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "customers cannot move requests", actor: actorWith(entity.RoleCustomer), to: entity.RequestAccepted, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := mockRepo.NewMockServiceRequestRepository(t)
			requests.EXPECT().FindServiceRequestByID(ctx, id).Return(pending(), nil)
			if tt.wantErr == nil {
				requests.EXPECT().UpdateServiceRequestStatus(ctx, id, entity.RequestPending, tt.to).Return(nil)
			}

			request, err := NewServiceRequestService(requests, mockRepo.NewMockServiceRepository(t), testLogger()).
				UpdateServiceRequestStatus(ctx, tt.actor, id, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, request.Status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := NewServiceRequestService(mockRepo.NewMockServiceRequestRepository(t), mockRepo.NewMockServiceRepository(t), testLogger()).
			UpdateServiceRequestStatus(ctx, provider, id, "CANCELLED")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestServiceRequestService_ListMyServiceRequests(t *testing.T) {
	ctx := context.Background()
	actor := actorWith(entity.RoleService)
	requests := mockRepo.NewMockServiceRequestRepository(t)
	requests.EXPECT().ListServiceRequestsByProvider(ctx, actor.UserID).Return([]*entity.ServiceRequest{{}}, nil)
	requests.EXPECT().ListServiceRequestsByCustomer(ctx, actor.UserID).Return([]*entity.ServiceRequest{}, nil)
	service := NewServiceRequestService(requests, mockRepo.NewMockServiceRepository(t), testLogger())

	asProvider, err := service.ListMyServiceRequests(ctx, actor, usecase.RequestSideProvider)
	require.NoError(t, err)
	assert.Len(t, asProvider, 1)

	asCustomer, err := service.ListMyServiceRequests(ctx, actor, "")
	require.NoError(t, err)
	assert.Empty(t, asCustomer)

	_, err = service.ListMyServiceRequests(ctx, actor, "admin")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()
	reviewer := actorWith(entity.RoleCustomer)
	target := uuid.Must(uuid.NewV7())

	newService := func(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository, *mockRepo.MockProductRepository) {
		reviews := mockRepo.NewMockReviewRepository(t)
		products := mockRepo.NewMockProductRepository(t)

		return NewReviewService(reviews, mockRepo.NewMockBusinessRepository(t), products, mockRepo.NewMockServiceRepository(t)), reviews, products
	}

	t.Run("rating out of range", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.CreateReview(ctx, reviewer, &usecase.ReviewInput{TargetType: entity.ReviewTargetProduct, TargetID: target, Rating: 6})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing target", func(t *testing.T) {
		service, _, products := newService(t)
		products.EXPECT().FindProductByID(ctx, target).Return(nil, domainerrors.ErrProductNotFound)

		_, err := service.CreateReview(ctx, reviewer, &usecase.ReviewInput{TargetType: entity.ReviewTargetProduct, TargetID: target, Rating: 4})
		assert.ErrorIs(t, err, domainerrors.ErrReviewTargetNotFound)
	})

	t.Run("stored", func(t *testing.T) {
		service, reviews, products := newService(t)
		products.EXPECT().FindProductByID(ctx, target).Return(&entity.Product{ID: target}, nil)
		reviews.EXPECT().CreateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := service.CreateReview(ctx, reviewer, &usecase.ReviewInput{TargetType: entity.ReviewTargetProduct, TargetID: target, Rating: 5, Comment: "solid"})
		require.NoError(t, err)
		assert.Equal(t, reviewer.UserID, review.ReviewerID)
	})
}
