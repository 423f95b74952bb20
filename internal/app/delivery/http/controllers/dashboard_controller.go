package controllers

import (
	"context"
	"net/http"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	RequestTimeout   time.Duration
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		RequestTimeout:   requestTimeout(internalConfig),
	}
}

func (ctrl *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	summary, err := ctrl.DashboardUsecase.GetSummary(ctx, sessionData)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSummarySuccessMessage, summary)
}
