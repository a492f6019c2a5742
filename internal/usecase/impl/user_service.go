package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/repository"
	"soko/internal/domain/service"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	avatars      service.AvatarStorage
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	avatars service.AvatarStorage,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		avatars:      avatars,
		logger:       logger,
	}
}

// Register opens an account. The user type defaults to CUSTOMER.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.logger.Info("Starting user registration", "username", input.Username)

	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and email are required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	userType := input.UserType
	if userType == "" {
		userType = entity.UserTypeCustomer
	}
	if !userType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown user_type " + string(userType))
	}
	location, err := locationOrUnset(input.Location)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	user := &entity.User{
		ID:           newID(),
		Username:     input.Username,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
		UserType:     userType,
		Phone:        input.Phone,
		Address:      input.Address,
		Location:     location,
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.logger.Debug("User registered successfully", "userID", user.ID)

	return user, nil
}

// Login checks the credentials and issues a token pair. Unknown users and
// wrong passwords are reported identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed: password mismatch", "userID", user.ID)

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	// Roles are re-read so a changed admin flag takes effect on refresh.
	user, err := srv.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.TokenOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateAvatar stores the picture under a fresh key and points the profile at it.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, input *usecase.AvatarInput) (*entity.User, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile picture must be an image")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	key := userID.String() + "/" + newID().String() + strings.ToLower(path.Ext(input.Filename))
	url, err := srv.avatars.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		srv.logger.Error("Failed to upload profile picture", "userID", userID, "error", err)

		return nil, errors.Wrap(err, "failed to upload profile picture")
	}
	if err := srv.userRepo.UpdateProfilePicture(ctx, userID, url); err != nil {
		return nil, errors.Wrap(err, "failed to update profile picture")
	}
	user.ProfilePicURL = url

	return user, nil
}
