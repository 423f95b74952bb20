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
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProposalController struct {
	Log             *zap.Logger
	ProposalUsecase contracts.ProposalUsecase
	RequestTimeout  time.Duration
}

func NewProposalController(logger *zap.Logger, proposalUsecase contracts.ProposalUsecase, internalConfig *config.InternalConfig) *ProposalController {
	return &ProposalController{
		Log:             logger,
		ProposalUsecase: proposalUsecase,
		RequestTimeout:  requestTimeout(internalConfig),
	}
}

func (ctrl *ProposalController) Create(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateProposal)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateProposalRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	proposal, err := ctrl.ProposalUsecase.CreateProposal(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateProposalSuccessMessage, proposal)
}

func (ctrl *ProposalController) List(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListProposals{
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

	proposals, err := ctrl.ProposalUsecase.ListProposals(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListProposalsSuccessMessage, proposals)
}

func (ctrl *ProposalController) ListMatching(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListMatchingProposals{
		SessionData: sessionData,
		Specialty:   strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSpecialty)),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	proposals, err := ctrl.ProposalUsecase.ListMatchingProposals(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListProposalsSuccessMessage, proposals)
}

func (ctrl *ProposalController) Get(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.proposalByID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	proposal, err := ctrl.ProposalUsecase.GetProposal(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}
	if proposal == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResourceNotFound(nil, "proposal"))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProposalSuccessMessage, proposal)
}

func (ctrl *ProposalController) Accept(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.proposalByID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	contract, err := ctrl.ProposalUsecase.AcceptProposal(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AcceptProposalSuccessMessage, contract)
}

func (ctrl *ProposalController) Reject(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.proposalByID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	proposal, err := ctrl.ProposalUsecase.RejectProposal(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RejectProposalSuccessMessage, proposal)
}

func (ctrl *ProposalController) proposalByID(r *http.Request) (*requests.ProposalByID, error) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		return nil, err
	}
	return &requests.ProposalByID{
		SessionData: sessionData,
		ProposalID:  chi.URLParam(r, constvars.URLParamProposalID),
	}, nil
}
