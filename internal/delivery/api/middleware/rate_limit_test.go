package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"soko/internal/domain/entity"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	e := echo.New()
	e.GET("/limited", okHandler, NewRateLimiter(2))

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))

	// Budgets are per caller.
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"))
}

func TestCallerIdentity(t *testing.T) {
	c, _ := newTestContext("")
	c.Request().RemoteAddr = "192.0.2.7:1234"

	id, err := callerIdentity(c)
	assert.NoError(t, err)
	assert.Equal(t, "ip:192.0.2.7", id)

	userID := uuid.Must(uuid.NewV7())
	SetActor(c, usecase.Actor{UserID: userID, Roles: entity.Roles{entity.RoleCustomer}})

	id, err = callerIdentity(c)
	assert.NoError(t, err)
	assert.Equal(t, "user:"+userID.String(), id)
}
