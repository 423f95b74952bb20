package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, sessionData string) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	Me(ctx context.Context, sessionData string) (*responses.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
}

type TokenManager interface {
	GenerateSessionToken(sessionID string) (token string, err error)
	ParseSessionToken(token string) (sessionID string, err error)
}
