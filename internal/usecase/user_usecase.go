package usecase

import (
	"context"
	"io"

	"soko/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	UserType entity.UserType
	Phone    string
	Address  string
	Location *entity.GeoPoint
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// AvatarInput is an uploaded profile picture.
type AvatarInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// --- Output DTOs ---

// TokenOutput returns the generated tokens after a successful login or refresh.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, input *AvatarInput) (*entity.User, error)
}
