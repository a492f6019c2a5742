package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/v1/products/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/products/:id", "204"))

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/products/:id", "204"))
	assert.InDelta(t, 2, after-before, 0)
}

func TestUpdateDBPoolMetrics(t *testing.T) {
	before := testutil.ToFloat64(DBPoolWaitCount)

	UpdateDBPoolMetrics(sql.DBStats{OpenConnections: 5, InUse: 3, Idle: 2}, 4)

	assert.InDelta(t, 5, testutil.ToFloat64(DBPoolConnsOpen), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(DBPoolConnsInUse), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(DBPoolConnsIdle), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(DBPoolWaitCount)-before, 0)
}

func TestHandlerServesExposition(t *testing.T) {
	e := echo.New()
	e.GET("/metrics", Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "soko_db_pool_conns_open")
}

func TestObserveSearch(t *testing.T) {
	radius := ProximitySearches.WithLabelValues("product", SearchModeRadius)
	empty := ProximitySearches.WithLabelValues("nearby_business", SearchModeEmpty)
	beforeRadius := testutil.ToFloat64(radius)
	beforeEmpty := testutil.ToFloat64(empty)

	ObserveSearch("product", SearchModeRadius, 12)
	ObserveSearch("nearby_business", SearchModeEmpty, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(radius)-beforeRadius, 0)
	assert.InDelta(t, 1, testutil.ToFloat64(empty)-beforeEmpty, 0)
}

func TestObserveTagJob(t *testing.T) {
	c := TagJobs.WithLabelValues(TagJobDropped)
	before := testutil.ToFloat64(c)

	ObserveTagJob(TagJobDropped)

	assert.InDelta(t, 1, testutil.ToFloat64(c)-before, 0)
}
