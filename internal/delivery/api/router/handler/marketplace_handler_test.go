package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	mockusecase "soko/internal/mocks/usecase"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type marketplaceMocks struct {
	categories *mockusecase.MockCategoryUsecase
	requests   *mockusecase.MockServiceRequestUsecase
	reviews    *mockusecase.MockReviewUsecase
}

func newMarketplaceHandler(t *testing.T) (*MarketplaceHandler, marketplaceMocks) {
	m := marketplaceMocks{
		categories: mockusecase.NewMockCategoryUsecase(t),
		requests:   mockusecase.NewMockServiceRequestUsecase(t),
		reviews:    mockusecase.NewMockReviewUsecase(t),
	}

	return NewMarketplaceHandler(MarketplaceHandlerParams{
		CategoryUC:       m.categories,
		ServiceRequestUC: m.requests,
		ReviewUC:         m.reviews,
		Logger:           testLogger(),
	}), m
}

func TestMarketplaceHandler_Categories(t *testing.T) {
	h, m := newMarketplaceHandler(t)
	m.categories.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{
		{ID: uuid.Must(uuid.NewV7()), Name: "Electronics", Icon: entity.DefaultCategoryIcon},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/categories", "")

	require.NoError(t, h.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []categoryResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "bi-box", categories[0].Icon)
}

func TestMarketplaceHandler_UpdateServiceRequestStatus(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	t.Run("unknown status fails validation", func(t *testing.T) {
		h, _ := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodPatch, "/", `{"status":"DONE"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		withActor(c, entity.RoleService)

		require.NoError(t, h.UpdateServiceRequestStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("illegal transition is a conflict", func(t *testing.T) {
		h, m := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodPatch, "/", `{"status":"COMPLETED"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		actor := withActor(c, entity.RoleService)

		m.requests.EXPECT().UpdateServiceRequestStatus(mock.Anything, actor, id, entity.RequestCompleted).
			Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("PENDING -> COMPLETED"))

		require.NoError(t, h.UpdateServiceRequestStatus(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		h, m := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodPatch, "/", `{"status":"ACCEPTED"}`)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		actor := withActor(c, entity.RoleService)

		m.requests.EXPECT().UpdateServiceRequestStatus(mock.Anything, actor, id, entity.RequestAccepted).
			Return(&entity.ServiceRequest{ID: id, Status: entity.RequestAccepted}, nil)

		require.NoError(t, h.UpdateServiceRequestStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body serviceRequestResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "ACCEPTED", body.Status)
	})
}

func TestMarketplaceHandler_ListServiceRequests(t *testing.T) {
	h, m := newMarketplaceHandler(t)

	c, rec := newContext(http.MethodGet, "/api/v1/service-requests?side=provider", "")
	actor := withActor(c, entity.RoleService)

	m.requests.EXPECT().ListMyServiceRequests(mock.Anything, actor, usecase.RequestSideProvider).
		Return([]*entity.ServiceRequest{}, nil)

	require.NoError(t, h.ListServiceRequests(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestMarketplaceHandler_Reviews(t *testing.T) {
	t.Run("list requires a valid target", func(t *testing.T) {
		h, _ := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodGet, "/api/v1/reviews?target_type=shop&target_id="+uuid.NewString(), "")

		require.NoError(t, h.ListReviews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list requires a target id", func(t *testing.T) {
		h, _ := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodGet, "/api/v1/reviews?target_type=product", "")

		require.NoError(t, h.ListReviews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rating outside 1..5", func(t *testing.T) {
		h, _ := newMarketplaceHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/reviews",
			`{"target_type":"service","target_id":"`+uuid.NewString()+`","rating":6}`)
		withActor(c, entity.RoleCustomer)

		require.NoError(t, h.CreateReview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		h, m := newMarketplaceHandler(t)
		target := uuid.Must(uuid.NewV7())

		c, rec := newContext(http.MethodPost, "/api/v1/reviews",
			`{"target_type":"service","target_id":"`+target.String()+`","rating":5,"comment":"great"}`)
		actor := withActor(c, entity.RoleCustomer)

		m.reviews.EXPECT().CreateReview(mock.Anything, actor, &usecase.ReviewInput{
			TargetType: entity.ReviewTargetService,
			TargetID:   target,
			Rating:     5,
			Comment:    "great",
		}).Return(&entity.Review{ID: uuid.Must(uuid.NewV7()), TargetType: entity.ReviewTargetService, TargetID: target, Rating: 5}, nil)

		require.NoError(t, h.CreateReview(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
