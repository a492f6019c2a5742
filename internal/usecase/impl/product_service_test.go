package impl

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	mockRepo "soko/internal/mocks/repository"
	mockUsecase "soko/internal/mocks/usecase"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	businessRepo *mockRepo.MockBusinessRepository
	tagJobs      *mockUsecase.MockTagJobUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	tagJobs := mockUsecase.NewMockTagJobUsecase(t)

	return productServiceFixtures{
		service:      NewProductService(productRepo, businessRepo, tagJobs, testConfig(), testLogger()),
		productRepo:  productRepo,
		businessRepo: businessRepo,
		tagJobs:      tagJobs,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	owner := actorWith(entity.RoleBusiness)
	business := &entity.Business{ID: uuid.Must(uuid.NewV7()), OwnerID: owner.UserID}

	t.Run("submits a tag job for the description", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		fx.tagJobs.EXPECT().
			SubmitTagJob(ctx, "ESP32 dev board with wifi", mock.AnythingOfType("*uuid.UUID")).
			Return("job-1", nil)

		product, err := fx.service.CreateProduct(ctx, owner, &usecase.ProductInput{
			BusinessID:  business.ID,
			Name:        "ESP32",
			Description: "ESP32 dev board with wifi",
			Price:       950,
		})
		require.NoError(t, err)
		assert.Equal(t, owner.UserID, product.OwnerID)
		assert.Equal(t, entity.ConditionNew, product.Condition)
		assert.Equal(t, []string{}, product.AITags)
	})

	t.Run("tag job failure does not fail the write", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		fx.tagJobs.EXPECT().SubmitTagJob(ctx, "Relay", mock.Anything).Return("", errors.New("broker down"))

		_, err := fx.service.CreateProduct(ctx, owner, &usecase.ProductInput{BusinessID: business.ID, Name: "Relay"})
		require.NoError(t, err)
	})

	t.Run("long descriptions are cut to the accepted length", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		fx.tagJobs.EXPECT().
			SubmitTagJob(ctx, mock.MatchedBy(func(text string) bool { return utf8.RuneCountInString(text) == 1000 }), mock.Anything).
			Return("job-2", nil)

		_, err := fx.service.CreateProduct(ctx, owner, &usecase.ProductInput{
			BusinessID:  business.ID,
			Name:        "Kit",
			Description: strings.Repeat("ü", 1500),
		})
		require.NoError(t, err)
	})

	t.Run("only the business owner may add products", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.CreateProduct(ctx, actorWith(entity.RoleBusiness), &usecase.ProductInput{BusinessID: business.ID, Name: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown condition", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.CreateProduct(ctx, owner, &usecase.ProductInput{BusinessID: business.ID, Name: "x", Condition: "BROKEN"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestProductService_ListProducts_ScopedToBusiness(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	businessID := uuid.Must(uuid.NewV7())

	fx.productRepo.EXPECT().
		FindWithinRadius(ctx, nairobi, 10000.0, proximity.Scope{ParentID: &businessID}, proximity.PageRequest{Page: 2, PageSize: 100}).
		Return([]proximity.Ranked[*entity.Product]{{Entity: &entity.Product{}}}, int64(101), nil)

	page, err := fx.service.ListProducts(ctx, &usecase.SearchInput{
		Params:   proximity.RawParams{Lat: "-1.2921", Lng: "36.8219"},
		Page:     "2",
		PageSize: "500",
		ParentID: &businessID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages())
	assert.False(t, page.HasNext())
}

func TestProductService_UpdateProduct_RetagsOnDescriptionChange(t *testing.T) {
	ctx := context.Background()
	owner := actorWith(entity.RoleBusiness)
	id := uuid.Must(uuid.NewV7())
	stored := func() *entity.Product {
		return &entity.Product{ID: id, OwnerID: owner.UserID, Name: "Pump", Description: "water pump", Condition: entity.ConditionUsed}
	}

	t.Run("new description", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, id).Return(stored(), nil)
		fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		fx.tagJobs.EXPECT().SubmitTagJob(ctx, "solar water pump", &id).Return("job-3", nil)

		product, err := fx.service.UpdateProduct(ctx, owner, id, &usecase.UpdateProductInput{Description: ptr("solar water pump")})
		require.NoError(t, err)
		assert.Equal(t, "solar water pump", product.Description)
	})

	t.Run("price only", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindProductByID(ctx, id).Return(stored(), nil)
		fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.UpdateProduct(ctx, owner, id, &usecase.UpdateProductInput{Price: ptr(12.5)})
		require.NoError(t, err)
		assert.InDelta(t, 12.5, product.Price, 0)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	admin := actorWith(entity.RoleCustomer, entity.RoleAdmin)
	id := uuid.Must(uuid.NewV7())

	fx.productRepo.EXPECT().FindProductByID(ctx, id).Return(&entity.Product{ID: id, OwnerID: uuid.Must(uuid.NewV7())}, nil)
	fx.productRepo.EXPECT().DeleteProduct(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, admin, id))
}
