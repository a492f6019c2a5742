package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"soko/internal/domain/entity"
	"soko/internal/domain/service"
	mockservice "soko/internal/mocks/service"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockservice.MockTokenService)
		wantStatus int
		wantActor  bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic Zm9vOmJhcg==",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"service", "bogus"},
					Type:   "access",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			c, rec := newTestContext(tt.header)

			err := NewAuthMiddleware(tokens).Authenticate(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			actor, ok := GetActor(c)
			assert.Equal(t, tt.wantActor, ok)
			if tt.wantActor {
				assert.Equal(t, userID, actor.UserID)
				assert.True(t, actor.Roles.Contains(entity.RoleService))
				assert.False(t, actor.IsAdmin())
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	auth := NewAuthMiddleware(nil)

	tests := []struct {
		name       string
		actor      *usecase.Actor
		wantStatus int
	}{
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing role",
			actor:      &usecase.Actor{UserID: uuid.Must(uuid.NewV7()), Roles: entity.Roles{entity.RoleCustomer}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "holds role",
			actor:      &usecase.Actor{UserID: uuid.Must(uuid.NewV7()), Roles: entity.Roles{entity.RoleBusiness}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin passes",
			actor:      &usecase.Actor{UserID: uuid.Must(uuid.NewV7()), Roles: entity.Roles{entity.RoleAdmin}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("")
			if tt.actor != nil {
				SetActor(c, *tt.actor)
			}

			err := auth.RequireRole(entity.RoleBusiness)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
