package impl

import (
	"context"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/domain/repository"
	mockRepo "soko/internal/mocks/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	txManager    *mockRepo.MockTransactionManager
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cfg := testConfig()
	cfg.Proximity.BusinessRadiusKm = 3

	return businessServiceFixtures{
		service:      NewBusinessService(businessRepo, txManager, cfg, testLogger()),
		businessRepo: businessRepo,
		txManager:    txManager,
	}
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the business role", func(t *testing.T) {
		fx := createTestBusinessService(t)

		_, err := fx.service.CreateBusiness(ctx, actorWith(entity.RoleCustomer), &usecase.BusinessInput{Name: "Kiosk"})
		assert.ErrorIs(t, err, domainerrors.ErrListingRoleRequired)
	})

	t.Run("missing location becomes the unset point", func(t *testing.T) {
		fx := createTestBusinessService(t)
		owner := actorWith(entity.RoleBusiness)

		fx.businessRepo.EXPECT().
			CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
			Return(nil)

		business, err := fx.service.CreateBusiness(ctx, owner, &usecase.BusinessInput{Name: "Kiosk"})
		require.NoError(t, err)
		assert.Equal(t, owner.UserID, business.OwnerID)
		assert.True(t, business.Location.IsUnset())
		assert.Equal(t, uuid.Version(7), business.ID.Version())
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		fx := createTestBusinessService(t)

		_, err := fx.service.CreateBusiness(ctx, actorWith(entity.RoleBusiness), &usecase.BusinessInput{
			Name:     "Kiosk",
			Location: &entity.GeoPoint{Lon: 200, Lat: 0},
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}

func TestBusinessService_NearbyBusinesses_NoOriginIsEmpty(t *testing.T) {
	fx := createTestBusinessService(t)

	page, err := fx.service.NearbyBusinesses(context.Background(), &usecase.SearchInput{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	// the mock has no expectations: any store call fails the test
}

func TestBusinessService_NearbyBusinesses_DefaultRadius(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	d := 420.0
	found := &entity.Business{ID: uuid.Must(uuid.NewV7()), Name: "near"}

	fx.businessRepo.EXPECT().
		FindWithinRadius(ctx, nairobi, 5000.0, proximity.Scope{}, proximity.PageRequest{Page: 1, PageSize: 20}).
		Return([]proximity.Ranked[*entity.Business]{{Entity: found, DistanceMeters: &d}}, int64(1), nil)

	page, err := fx.service.NearbyBusinesses(ctx, &usecase.SearchInput{
		Params: proximity.RawParams{Lat: "-1.2921", Lng: "36.8219"},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.InDelta(t, 420.0, *page.Items[0].DistanceMeters, 0)
}

func TestBusinessService_ListBusinesses(t *testing.T) {
	ctx := context.Background()
	category := uuid.Must(uuid.NewV7())

	t.Run("no origin lists everything unfiltered", func(t *testing.T) {
		fx := createTestBusinessService(t)
		all := []*entity.Business{{Name: "a"}, {Name: "b"}}

		fx.businessRepo.EXPECT().
			FindAll(ctx, proximity.Scope{CategoryID: &category}, proximity.PageRequest{Page: 1, PageSize: 20}).
			Return(all, int64(2), nil)

		page, err := fx.service.ListBusinesses(ctx, &usecase.SearchInput{CategoryID: &category})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Nil(t, page.Items[0].DistanceMeters)
	})

	t.Run("configured default radius applies", func(t *testing.T) {
		fx := createTestBusinessService(t)

		fx.businessRepo.EXPECT().
			FindWithinRadius(ctx, nairobi, 3000.0, proximity.Scope{}, proximity.PageRequest{Page: 1, PageSize: 50}).
			Return([]proximity.Ranked[*entity.Business]{}, int64(0), nil)

		_, err := fx.service.ListBusinesses(ctx, &usecase.SearchInput{
			Params:   proximity.RawParams{Lat: "-1.2921", Lng: "36.8219"},
			PageSize: "50",
		})
		require.NoError(t, err)
	})

	t.Run("invalid radius never reaches the store", func(t *testing.T) {
		fx := createTestBusinessService(t)

		_, err := fx.service.ListBusinesses(ctx, &usecase.SearchInput{
			Params: proximity.RawParams{Lat: "-1.2921", Lng: "36.8219", Radius: "-2"},
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	})

	t.Run("page past the end", func(t *testing.T) {
		fx := createTestBusinessService(t)

		fx.businessRepo.EXPECT().
			FindAll(ctx, proximity.Scope{}, proximity.PageRequest{Page: 3, PageSize: 20}).
			Return([]*entity.Business{}, int64(21), nil)

		_, err := fx.service.ListBusinesses(ctx, &usecase.SearchInput{Page: "3"})
		assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		fx := createTestBusinessService(t)
		boom := errors.New("connection reset")

		fx.businessRepo.EXPECT().
			FindAll(ctx, proximity.Scope{}, proximity.PageRequest{Page: 1, PageSize: 20}).
			Return(nil, int64(0), boom)

		_, err := fx.service.ListBusinesses(ctx, nil)
		assert.ErrorIs(t, err, boom)
	})
}

func TestBusinessService_UpdateBusiness(t *testing.T) {
	ctx := context.Background()
	owner := actorWith(entity.RoleBusiness)
	id := uuid.Must(uuid.NewV7())

	t.Run("only the owner may update", func(t *testing.T) {
		fx := createTestBusinessService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, id).
			Return(&entity.Business{ID: id, OwnerID: owner.UserID, Name: "Kiosk"}, nil)

		_, err := fx.service.UpdateBusiness(ctx, actorWith(entity.RoleBusiness), id, &usecase.UpdateBusinessInput{Name: ptr("x")})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("replaces the location wholesale", func(t *testing.T) {
		fx := createTestBusinessService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, id).
			Return(&entity.Business{ID: id, OwnerID: owner.UserID, Name: "Kiosk", Address: "Moi Ave"}, nil)
		fx.businessRepo.EXPECT().UpdateBusiness(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

		business, err := fx.service.UpdateBusiness(ctx, owner, id, &usecase.UpdateBusinessInput{Location: &nairobi})
		require.NoError(t, err)
		assert.Equal(t, nairobi, business.Location)
		assert.Equal(t, "Moi Ave", business.Address)
		assert.Equal(t, "Kiosk", business.Name)
	})
}

func TestBusinessService_DeleteBusiness_RemovesProductsInTransaction(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	owner := actorWith(entity.RoleBusiness)
	id := uuid.Must(uuid.NewV7())

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, id).
		Return(&entity.Business{ID: id, OwnerID: owner.UserID}, nil)

	txProducts := mockRepo.NewMockProductRepository(t)
	txBusinesses := mockRepo.NewMockBusinessRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(txProducts)
	factory.EXPECT().NewBusinessRepository().Return(txBusinesses)

	var order []string
	txProducts.EXPECT().DeleteProductsByBusiness(ctx, id).
		Run(func(context.Context, uuid.UUID) { order = append(order, "products") }).
		Return(nil)
	txBusinesses.EXPECT().DeleteBusiness(ctx, id).
		Run(func(context.Context, uuid.UUID) { order = append(order, "business") }).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteBusiness(ctx, owner, id))
	assert.Equal(t, []string{"products", "business"}, order)
}
