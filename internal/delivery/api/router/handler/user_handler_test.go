package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"soko/internal/delivery/api/validator"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	mockusecase "soko/internal/mocks/usecase"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*UserHandler, *mockusecase.MockUserUsecase) {
	uc := mockusecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: uc, Logger: testLogger()}), uc
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		h, _ := newUserHandler(t)

		c, rec := newContext(http.MethodPost, "/api/v1/auth/register",
			`{"username":"wanjiru","email":"w@example.com","password":"short"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password: min=8", decode(t, rec).Error.Details)
	})

	t.Run("registered account omits the password hash", func(t *testing.T) {
		h, uc := newUserHandler(t)
		user := &entity.User{
			ID:           uuid.Must(uuid.NewV7()),
			Username:     "wanjiru",
			Email:        "w@example.com",
			PasswordHash: "$2a$hash",
			UserType:     entity.UserTypeService,
		}

		uc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Username == "wanjiru" && in.UserType == entity.UserTypeService && in.Location == nil
		})).Return(user, nil)

		c, rec := newContext(http.MethodPost, "/api/v1/auth/register",
			`{"username":"wanjiru","email":"w@example.com","password":"longenough","user_type":"SERVICE"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$hash")
	})

	t.Run("duplicate account", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		c, rec := newContext(http.MethodPost, "/api/v1/auth/register",
			`{"username":"wanjiru","email":"w@example.com","password":"longenough"}`)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("tokens and user", func(t *testing.T) {
		h, uc := newUserHandler(t)
		user := &entity.User{ID: uuid.Must(uuid.NewV7()), Username: "wanjiru", UserType: entity.UserTypeCustomer}

		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "wanjiru", Password: "longenough"}).
			Return(&usecase.TokenOutput{AccessToken: "a", RefreshToken: "r", User: user}, nil)

		c, rec := newContext(http.MethodPost, "/api/v1/auth/login", `{"username":"wanjiru","password":"longenough"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body tokenResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "a", body.Access)
		assert.Equal(t, "r", body.Refresh)
		assert.Equal(t, user.ID, body.User.ID)
	})

	t.Run("bad credentials hide details", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("user missing"))

		c, rec := newContext(http.MethodPost, "/api/v1/auth/login", `{"username":"x","password":"y"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, decode(t, rec).Error.Details)
	})
}

func TestUserHandler_UpdateAvatar(t *testing.T) {
	newUpload := func(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		e := echo.New()
		e.Validator = validator.New()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/me/avatar", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		return e.NewContext(req, rec), rec
	}

	t.Run("uploads the file", func(t *testing.T) {
		h, uc := newUserHandler(t)
		c, rec := newUpload(t)
		actor := withActor(c, entity.RoleCustomer)

		uc.EXPECT().UpdateAvatar(mock.Anything, actor.UserID, mock.MatchedBy(func(in *usecase.AvatarInput) bool {
			if in.Filename != "me.png" || in.ContentType != "image/png" {
				return false
			}
			data, err := io.ReadAll(in.Body)

			return err == nil && string(data) == "png-bytes"
		})).Return(&entity.User{ID: actor.UserID, ProfilePicURL: "https://cdn.example.com/me.png"}, nil)

		require.NoError(t, h.UpdateAvatar(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://cdn.example.com/me.png")
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newUserHandler(t)
		c, rec := newContext(http.MethodPut, "/api/v1/me/avatar", `{}`)
		withActor(c, entity.RoleCustomer)

		require.NoError(t, h.UpdateAvatar(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
