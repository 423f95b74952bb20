package contracts

import (
	"context"
	"plantao-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context, sessionData string) (*responses.DashboardSummary, error)
}
