package controllers

import (
	"context"
	"net/http"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"plantao-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	RequestTimeout      time.Duration
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		RequestTimeout:      requestTimeout(internalConfig),
	}
}

// Submit answers 201 when at least one date was saved and 409 when every date
// was skipped. Both carry the created and skipped lists.
func (ctrl *AvailabilityController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SubmitAvailability)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeSubmitAvailabilityRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.SubmitAvailability(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	switch {
	case len(result.Created) == 0:
		utils.BuildFailureResponse(w, constvars.StatusConflict, constvars.SubmitAvailabilityConflictMessage, result)
	case len(result.Skipped) > 0:
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAvailabilityPartialMessage, result)
	default:
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAvailabilitySuccessMessage, result)
	}
}

func (ctrl *AvailabilityController) List(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	slots, err := ctrl.AvailabilityUsecase.ListSlots(ctx, sessionData)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSlotsSuccessMessage, slots)
}

func (ctrl *AvailabilityController) Update(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateSlot)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateSlotRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData
	request.SlotID = chi.URLParam(r, constvars.URLParamSlotID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	slot, err := ctrl.AvailabilityUsecase.UpdateSlot(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSlotSuccessMessage, slot)
}

func (ctrl *AvailabilityController) Delete(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.SlotByID{
		SessionData: sessionData,
		SlotID:      chi.URLParam(r, constvars.URLParamSlotID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.AvailabilityUsecase.DeleteSlot(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSlotSuccessMessage, nil)
}
