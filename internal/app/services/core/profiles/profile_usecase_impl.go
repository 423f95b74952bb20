package profiles

import (
	"context"
	"fmt"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type profileUsecase struct {
	DoctorProfileRepository contracts.DoctorProfileRepository
	Storage                 contracts.Storage
	SessionService          contracts.SessionService
	InternalConfig          *config.InternalConfig
	Now                     func() time.Time
	Log                     *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	doctorProfileRepository contracts.DoctorProfileRepository,
	storage contracts.Storage,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			DoctorProfileRepository: doctorProfileRepository,
			Storage:                 storage,
			SessionService:          sessionService,
			InternalConfig:          internalConfig,
			Now:                     time.Now,
			Log:                     logger,
		}
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) GetProfile(ctx context.Context, sessionData string) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.loadProfile(ctx, session.UserID)
}

func (uc *profileUsecase) UpdatePersonal(ctx context.Context, request *requests.UpdatePersonalInfo) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdatePersonal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	return uc.updateSection(ctx, session.UserID, map[string]interface{}{
		"personal.name":      request.Name,
		"personal.email":     request.Email,
		"personal.phone":     request.Phone,
		"personal.cpf":       request.CPF,
		"personal.birthdate": request.BirthDate,
		"personal.gender":    request.Gender,
		"personal.address":   request.Address,
	})
}

func (uc *profileUsecase) UpdateProfessional(ctx context.Context, request *requests.UpdateProfessionalInfo) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	specialties := request.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return uc.updateSection(ctx, session.UserID, map[string]interface{}{
		"professional": models.ProfessionalInfo{
			CRM:            request.CRM,
			Graduation:     request.Graduation,
			GraduationYear: request.GraduationYear,
			Specialties:    specialties,
			ServiceType:    request.ServiceType,
			Experience:     request.Experience,
			Bio:            request.Bio,
		},
	})
}

func (uc *profileUsecase) UpdateFinancial(ctx context.Context, request *requests.UpdateFinancialInfo) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateFinancial called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	return uc.updateSection(ctx, session.UserID, map[string]interface{}{
		"financial": models.FinancialInfo{
			HourlyRate:  request.HourlyRate,
			Bank:        request.Bank,
			Agency:      request.Agency,
			Account:     request.Account,
			AccountType: request.AccountType,
			Pix:         request.Pix,
		},
	})
}

func (uc *profileUsecase) UploadProfilePhoto(ctx context.Context, request *requests.UploadFile) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadProfilePhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if request.ContentType != constvars.MIMEImageJPEG && request.ContentType != constvars.MIMEImagePNG {
		return nil, exceptions.ErrDocumentInvalidType(nil, request.ContentType)
	}
	err = checkSize(request.Size, uc.InternalConfig.Minio.ProfilePhotoMaxSizeInMB)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%s", constvars.StoragePrefixProfilePhotos, session.UserID)
	_, err = uc.Storage.UploadObject(ctx, request.File, request.Size, objectName, request.ContentType, uc.InternalConfig.Minio.BucketName)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePhoto error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.updateSection(ctx, session.UserID, map[string]interface{}{
		"personal.photoObjectName": objectName,
	})
}

func (uc *profileUsecase) UploadDocument(ctx context.Context, request *requests.UploadFile) (*models.DocumentRef, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKey, request.DocumentKey),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if !IsDocumentKey(request.DocumentKey) {
		return nil, exceptions.ErrUnknownDocumentKey(nil, request.DocumentKey)
	}
	if !constvars.AllowedDocumentContentTypes[request.ContentType] {
		return nil, exceptions.ErrDocumentInvalidType(nil, request.ContentType)
	}
	err = checkSize(request.Size, uc.InternalConfig.Minio.DocumentMaxSizeInMB)
	if err != nil {
		return nil, err
	}

	profile, err := uc.DoctorProfileRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	owner := session.UserID
	if profile != nil && profile.Personal.CPF != "" {
		owner = profile.Personal.CPF
	}

	objectName := fmt.Sprintf("%s/%s/%s", constvars.StoragePrefixDocuments, owner, request.DocumentKey)
	_, err = uc.Storage.UploadObject(ctx, request.File, request.Size, objectName, request.ContentType, uc.InternalConfig.Minio.BucketName)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadDocument error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	document := models.DocumentRef{
		ObjectName:  objectName,
		FileName:    request.FileName,
		ContentType: request.ContentType,
		Size:        request.Size,
		UploadedAt:  uc.Now(),
	}
	err = uc.DoctorProfileRepository.UpdateFields(ctx, session.UserID, map[string]interface{}{
		"documents." + request.DocumentKey: document,
		"updatedAt":                        document.UploadedAt,
	})
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (uc *profileUsecase) FinalizeDocuments(ctx context.Context, sessionData string) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.FinalizeDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	profile, err := uc.loadProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	missing := MissingMandatoryDocuments(profile.Documents)
	if len(missing) > 0 {
		return nil, exceptions.ErrMandatoryDocumentsMissing(nil, missing)
	}

	now := uc.Now()
	err = uc.DoctorProfileRepository.UpdateFields(ctx, session.UserID, map[string]interface{}{
		"documentsSubmittedAt": now,
		"updatedAt":            now,
	})
	if err != nil {
		return nil, err
	}
	profile.DocumentsSubmittedAt = &now
	profile.UpdatedAt = now
	return profile, nil
}

func (uc *profileUsecase) doctorSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func (uc *profileUsecase) updateSection(ctx context.Context, doctorID string, fields map[string]interface{}) (*models.DoctorProfile, error) {
	fields["updatedAt"] = uc.Now()
	err := uc.DoctorProfileRepository.UpdateFields(ctx, doctorID, fields)
	if err != nil {
		return nil, err
	}
	return uc.loadProfile(ctx, doctorID)
}

// loadProfile also resolves the photo into a presigned URL.
func (uc *profileUsecase) loadProfile(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	profile, err := uc.DoctorProfileRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "profile")
	}

	if profile.Personal.PhotoObjectName != "" {
		expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, profile.Personal.PhotoObjectName, expiry)
		if err != nil {
			return nil, err
		}
		profile.Personal.PhotoURL = url
	}
	return profile, nil
}

func checkSize(size, limitInMB int64) error {
	if limitInMB <= 0 {
		limitInMB = constvars.DocumentMaxSizeInMB
	}
	limit := limitInMB << 20
	if size > limit {
		return exceptions.ErrDocumentTooLarge(nil, size, limit)
	}
	return nil
}
