package controllers

import (
	"context"
	"net/http"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"plantao-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContractController struct {
	Log                  *zap.Logger
	ShiftContractUsecase contracts.ShiftContractUsecase
	RequestTimeout       time.Duration
}

func NewContractController(logger *zap.Logger, shiftContractUsecase contracts.ShiftContractUsecase, internalConfig *config.InternalConfig) *ContractController {
	return &ContractController{
		Log:                  logger,
		ShiftContractUsecase: shiftContractUsecase,
		RequestTimeout:       requestTimeout(internalConfig),
	}
}

func (ctrl *ContractController) List(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListContracts{
		SessionData: sessionData,
		Status:      strings.ToLower(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamStatus))),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ShiftContractUsecase.ListContracts(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListContractsSuccessMessage, result)
}

func (ctrl *ContractController) Get(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ShiftContractUsecase.GetContract(ctx, &requests.ContractByID{
		SessionData: sessionData,
		ContractID:  chi.URLParam(r, constvars.URLParamContractID),
	})
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContractSuccessMessage, result)
}

func (ctrl *ContractController) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctrl.attend(w, r, ctrl.ShiftContractUsecase.CheckIn, constvars.CheckInSuccessMessage)
}

func (ctrl *ContractController) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctrl.attend(w, r, ctrl.ShiftContractUsecase.CheckOut, constvars.CheckOutSuccessMessage)
}

func (ctrl *ContractController) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ShiftContractUsecase.CancelContract(ctx, &requests.ContractByID{
		SessionData: sessionData,
		ContractID:  chi.URLParam(r, constvars.URLParamContractID),
	})
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelContractSuccessMessage, result)
}

type attendFunc func(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error)

func (ctrl *ContractController) attend(w http.ResponseWriter, r *http.Request, action attendFunc, message string) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AttendanceVerification)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData
	request.ContractID = chi.URLParam(r, constvars.URLParamContractID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := action(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
