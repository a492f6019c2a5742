package impl

import (
	"context"
	"strings"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/service"
	mockRepo "soko/internal/mocks/repository"
	mockSvc "soko/internal/mocks/service"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	avatars      *mockSvc.MockAvatarStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		avatars:      mockSvc.NewMockAvatarStorage(t),
	}
	fx.service = NewUserService(fx.userRepo, fx.hasher, fx.tokenService, fx.avatars, testLogger())

	return fx
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and defaults to customer", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		fx.userRepo.EXPECT().
			CreateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.PasswordHash == "hashed" && u.Email == "wanjiku@example.com"
			})).
			Return(nil)

		user, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: "wanjiku",
			Email:    " Wanjiku@Example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.UserTypeCustomer, user.UserType)
	})

	t.Run("short password", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "a", Email: "a@b.c", Password: "short"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "a", Email: "a@b.c", Password: "long-enough", UserType: entity.UserTypeService})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.Must(uuid.NewV7()), Username: "otieno", PasswordHash: "hashed", UserType: entity.UserTypeBusiness, IsAdmin: true}

	t.Run("issues tokens with account roles", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindUserByUsername(ctx, "otieno").Return(user, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"business", "admin"}).Return("access", "refresh", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "otieno", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)
		fx.userRepo.EXPECT().FindUserByUsername(ctx, "otieno").Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

		_, err = fx.service.Login(ctx, &usecase.LoginInput{Username: "otieno", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.Must(uuid.NewV7()), UserType: entity.UserTypeService}

	t.Run("re-reads roles", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"service"}).Return("a2", "r2", nil)

		out, err := fx.service.RefreshToken(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "r2", out.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("junk").Return(nil, errors.New("malformed"))

		_, err := fx.service.RefreshToken(ctx, "junk")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.Must(uuid.NewV7())}

	t.Run("uploads under the user prefix", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		fx.avatars.EXPECT().
			Upload(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, user.ID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", mock.Anything).
			Return("https://cdn.example.com/avatars/x.png", nil)
		fx.userRepo.EXPECT().UpdateProfilePicture(ctx, user.ID, "https://cdn.example.com/avatars/x.png").Return(nil)

		updated, err := fx.service.UpdateAvatar(ctx, user.ID, &usecase.AvatarInput{
			Filename:    "Me.PNG",
			ContentType: "image/png",
			Body:        strings.NewReader("png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/x.png", updated.ProfilePicURL)
	})

	t.Run("rejects non images", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateAvatar(ctx, user.ID, &usecase.AvatarInput{Filename: "cv.pdf", ContentType: "application/pdf"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
