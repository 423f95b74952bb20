package controllers

import (
	"context"
	"errors"
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

type ProfileController struct {
	Log                 *zap.Logger
	ProfileUsecase      contracts.ProfileUsecase
	VerificationService contracts.VerificationService
	RequestTimeout      time.Duration
}

func NewProfileController(
	logger *zap.Logger,
	profileUsecase contracts.ProfileUsecase,
	verificationService contracts.VerificationService,
	internalConfig *config.InternalConfig,
) *ProfileController {
	return &ProfileController{
		Log:                 logger,
		ProfileUsecase:      profileUsecase,
		VerificationService: verificationService,
		RequestTimeout:      requestTimeout(internalConfig),
	}
}

func (ctrl *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.GetProfile(ctx, sessionData)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePersonalInfo)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdatePersonalInfoRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UpdatePersonal(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateProfessionalInfo)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateProfessionalInfoRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UpdateProfessional(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdateFinancial(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateFinancialInfo)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateFinancialInfoRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UpdateFinancial(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	request, closeFile, err := uploadFromMultipart(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closeFile()

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UploadProfilePhoto(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadPhotoSuccessMessage, profile)
}

func (ctrl *ProfileController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	request, closeFile, err := uploadFromMultipart(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closeFile()
	request.DocumentKey = chi.URLParam(r, constvars.URLParamDocumentKey)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	document, err := ctrl.ProfileUsecase.UploadDocument(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, document)
}

func (ctrl *ProfileController) FinalizeDocuments(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.FinalizeDocuments(ctx, sessionData)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FinalizeDocumentsSuccessMessage, profile)
}

func (ctrl *ProfileController) EnrollFace(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.EnrollFace)
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

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.VerificationService.EnrollFace(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EnrollFaceSuccessMessage, nil)
}

// uploadFromMultipart reads the "file" part. The returned func closes it.
func uploadFromMultipart(r *http.Request) (*requests.UploadFile, func(), error) {
	sessionData, err := sessionDataFrom(r)
	if err != nil {
		return nil, nil, err
	}

	err = r.ParseMultipartForm(constvars.MultipartMaxMemory)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, exceptions.ErrRequestBodyTooLarge(err, maxErr.Limit)
		}
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, header, err := r.FormFile(constvars.FormFieldFile)
	if err != nil {
		return nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	return &requests.UploadFile{
		SessionData: sessionData,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	}, func() { file.Close() }, nil
}
