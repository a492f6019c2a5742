package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	mockusecase "soko/internal/mocks/usecase"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBusinessHandler(t *testing.T) (*BusinessHandler, *mockusecase.MockBusinessUsecase) {
	uc := mockusecase.NewMockBusinessUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: uc, Logger: testLogger()}), uc
}

func nairobiBusiness() *entity.Business {
	return &entity.Business{
		ID:       uuid.Must(uuid.NewV7()),
		OwnerID:  uuid.Must(uuid.NewV7()),
		Name:     "Kibanda",
		Location: entity.GeoPoint{Lon: 36.8219, Lat: -1.2921},
	}
}

func TestBusinessHandler_ListBusinesses(t *testing.T) {
	t.Run("geo query renders lat-first location and distance", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		category := uuid.Must(uuid.NewV7())
		business := nairobiBusiness()

		uc.EXPECT().ListBusinesses(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Params.Lat == "-1.2921" &&
				in.Params.Lng == "36.8219" &&
				in.Params.Radius == "5" &&
				in.Page == "1" &&
				in.PageSize == "1" &&
				in.CategoryID != nil && *in.CategoryID == category
		})).Return(&proximity.Page[*entity.Business]{
			Items:    []proximity.Ranked[*entity.Business]{{Entity: business, DistanceMeters: ptr(0.0)}},
			Total:    2,
			Page:     1,
			PageSize: 1,
		}, nil)

		c, rec := newContext(http.MethodGet,
			"/api/v1/businesses?lat=-1.2921&lng=36.8219&radius=5&page=1&page_size=1&category="+category.String(), "")

		require.NoError(t, h.ListBusinesses(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		page := decodePage(t, rec)
		assert.Equal(t, int64(2), page.Count)
		require.NotNil(t, page.Next)
		assert.Contains(t, *page.Next, "page=2")
		assert.Contains(t, *page.Next, "lat=-1.2921")
		assert.Nil(t, page.Previous)

		require.Len(t, page.Results, 1)
		var item struct {
			ID       uuid.UUID          `json:"id"`
			Location map[string]float64 `json:"location"`
			Distance *float64           `json:"distance"`
		}
		require.NoError(t, json.Unmarshal(page.Results[0], &item))
		assert.Equal(t, business.ID, item.ID)
		assert.Equal(t, -1.2921, item.Location["lat"])
		assert.Equal(t, 36.8219, item.Location["lng"])
		require.NotNil(t, item.Distance)
		assert.Zero(t, *item.Distance)
	})

	t.Run("list without origin has no distance", func(t *testing.T) {
		h, uc := newBusinessHandler(t)

		uc.EXPECT().ListBusinesses(mock.Anything, mock.Anything).Return(&proximity.Page[*entity.Business]{
			Items:    []proximity.Ranked[*entity.Business]{{Entity: nairobiBusiness()}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

		c, rec := newContext(http.MethodGet, "/api/v1/businesses", "")

		require.NoError(t, h.ListBusinesses(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "distance")

		page := decodePage(t, rec)
		assert.Nil(t, page.Next)
		assert.Nil(t, page.Previous)
	})

	t.Run("malformed category is rejected before the use case", func(t *testing.T) {
		h, _ := newBusinessHandler(t)

		c, rec := newContext(http.MethodGet, "/api/v1/businesses?category=nope", "")

		require.NoError(t, h.ListBusinesses(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid radius", domainerrors.ErrInvalidRadius.WithDetails("radius=0"), http.StatusBadRequest, "INVALID_RADIUS"},
		{"invalid coordinates", domainerrors.ErrInvalidCoordinates, http.StatusBadRequest, "INVALID_COORDINATES"},
		{"page past the end", domainerrors.ErrPageNotFound, http.StatusNotFound, "PAGE_NOT_FOUND"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			h, uc := newBusinessHandler(t)
			uc.EXPECT().ListBusinesses(mock.Anything, mock.Anything).Return(nil, tc.err)

			c, rec := newContext(http.MethodGet, "/api/v1/businesses?lat=1&lng=1", "")

			require.NoError(t, h.ListBusinesses(c))
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decode(t, rec).Error.Code)
		})
	}
}

func TestBusinessHandler_NearbyBusinesses(t *testing.T) {
	h, uc := newBusinessHandler(t)

	uc.EXPECT().NearbyBusinesses(mock.Anything, mock.Anything).Return(&proximity.Page[*entity.Business]{
		Items:    []proximity.Ranked[*entity.Business]{},
		Page:     1,
		PageSize: 20,
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/v1/nearby-businesses", "")

	require.NoError(t, h.NearbyBusinesses(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	page := decodePage(t, rec)
	assert.Zero(t, page.Count)
	assert.Empty(t, page.Results)
}

func TestBusinessHandler_CreateBusiness(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newBusinessHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/businesses", `{"name":"Kibanda"}`)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("location body is converted lon-first", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		created := nairobiBusiness()

		c, rec := newContext(http.MethodPost, "/api/v1/businesses",
			`{"name":"Kibanda","location":{"lat":-1.2921,"lng":36.8219}}`)
		actor := withActor(c, entity.RoleBusiness)

		uc.EXPECT().CreateBusiness(mock.Anything, actor, mock.MatchedBy(func(in *usecase.BusinessInput) bool {
			return in.Name == "Kibanda" &&
				in.Location != nil &&
				in.Location.Lon == 36.8219 && in.Location.Lat == -1.2921
		})).Return(created, nil)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		h, _ := newBusinessHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/businesses",
			`{"name":"Kibanda","location":{"lat":95,"lng":36.8}}`)
		withActor(c, entity.RoleBusiness)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COORDINATES", decode(t, rec).Error.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		h, _ := newBusinessHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/businesses", `{"description":"x"}`)
		withActor(c, entity.RoleBusiness)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "name: required", env.Error.Details)
	})

	t.Run("customer accounts cannot publish", func(t *testing.T) {
		h, uc := newBusinessHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/businesses", `{"name":"Kibanda"}`)
		withActor(c, entity.RoleCustomer)

		uc.EXPECT().CreateBusiness(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrListingRoleRequired)

		require.NoError(t, h.CreateBusiness(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestBusinessHandler_UpdateAndDelete(t *testing.T) {
	t.Run("partial update passes only supplied fields", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		business := nairobiBusiness()

		c, rec := newContext(http.MethodPatch, "/", `{"address":"Moi Avenue"}`)
		c.SetParamNames("id")
		c.SetParamValues(business.ID.String())
		actor := withActor(c, entity.RoleBusiness)

		uc.EXPECT().UpdateBusiness(mock.Anything, actor, business.ID, mock.MatchedBy(func(in *usecase.UpdateBusinessInput) bool {
			return in.Address != nil && *in.Address == "Moi Avenue" && in.Name == nil && in.Location == nil
		})).Return(business, nil)

		require.NoError(t, h.UpdateBusiness(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete answers 204", func(t *testing.T) {
		h, uc := newBusinessHandler(t)
		id := uuid.Must(uuid.NewV7())

		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		actor := withActor(c, entity.RoleBusiness)

		uc.EXPECT().DeleteBusiness(mock.Anything, actor, id).Return(nil)

		require.NoError(t, h.DeleteBusiness(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newBusinessHandler(t)

		c, rec := newContext(http.MethodDelete, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("42")
		withActor(c, entity.RoleBusiness)

		require.NoError(t, h.DeleteBusiness(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
