package middlewares

import (
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	TokenManager   contracts.TokenManager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	tokenManager contracts.TokenManager,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		TokenManager:   tokenManager,
		InternalConfig: internalConfig,
	}
}
