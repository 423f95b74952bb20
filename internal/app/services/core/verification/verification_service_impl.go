package verification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"plantao-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type verificationService struct {
	DoctorProfileRepository contracts.DoctorProfileRepository
	FacialDataRepository    contracts.FacialDataRepository
	Storage                 contracts.Storage
	FaceMatcher             contracts.FaceMatcher
	SessionService          contracts.SessionService
	InternalConfig          *config.InternalConfig
	Now                     func() time.Time
	Log                     *zap.Logger
}

var (
	verificationServiceInstance contracts.VerificationService
	onceVerificationService     sync.Once
)

func NewVerificationService(
	doctorProfileRepository contracts.DoctorProfileRepository,
	facialDataRepository contracts.FacialDataRepository,
	storage contracts.Storage,
	faceMatcher contracts.FaceMatcher,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VerificationService {
	onceVerificationService.Do(func() {
		verificationServiceInstance = &verificationService{
			DoctorProfileRepository: doctorProfileRepository,
			FacialDataRepository:    facialDataRepository,
			Storage:                 storage,
			FaceMatcher:             faceMatcher,
			SessionService:          sessionService,
			InternalConfig:          internalConfig,
			Now:                     time.Now,
			Log:                     logger,
		}
	})
	return verificationServiceInstance
}

// Verify runs the identity step and then the geolocation step. Every frame
// that reaches the matcher is archived, accepted or not.
func (s *verificationService) Verify(ctx context.Context, doctorID string, contract *models.Contract, frame string, location *requests.DeviceLocation) (*responses.Verification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("verificationService.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingContractIDKey, contract.ID),
	)

	threshold := s.InternalConfig.Verification.FaceMatchThreshold
	if frame == "" {
		return nil, exceptions.ErrIdentityVerificationFailed(errors.New("no frame captured"), 0, threshold)
	}
	frameBytes, contentType, _, err := utils.DecodeBase64Image(frame)
	if err != nil {
		return nil, exceptions.ErrIdentityVerificationFailed(err, 0, threshold)
	}

	profile, err := s.DoctorProfileRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.FaceReference == "" {
		return nil, exceptions.ErrFaceNotEnrolled(nil, doctorID)
	}

	objectName, err := s.archiveFrame(ctx, doctorID, frameBytes, contentType)
	if err != nil {
		return nil, err
	}

	bucketName := s.InternalConfig.Minio.BucketName
	reference, err := s.Storage.GetObject(ctx, bucketName, profile.FaceReference)
	if err != nil {
		return nil, err
	}

	score, err := s.FaceMatcher.Match(ctx, reference, frameBytes)
	if err != nil {
		return nil, exceptions.ErrIdentityVerificationFailed(err, 0, threshold)
	}
	if score < threshold {
		s.Log.Info("verificationService.Verify face rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Float64(constvars.LoggingMatchScoreKey, score),
		)
		return nil, exceptions.ErrIdentityVerificationFailed(nil, score, threshold)
	}

	distance, err := s.checkGeofence(contract, location)
	if err != nil {
		return nil, err
	}

	return &responses.Verification{
		MatchScore:      score,
		DistanceMeters:  distance,
		FrameObjectName: objectName,
	}, nil
}

func (s *verificationService) checkGeofence(contract *models.Contract, location *requests.DeviceLocation) (float64, error) {
	if location == nil {
		return 0, exceptions.ErrLocationUnavailable(nil, "no coordinates captured")
	}
	if location.Permission == constvars.LocationPermissionDenied {
		return 0, exceptions.ErrLocationUnavailable(nil, "location permission denied")
	}
	if contract.Coordinates == nil {
		return 0, exceptions.ErrLocationUnavailable(nil, fmt.Sprintf("contract %s has no coordinates", contract.ID))
	}

	distance := DistanceMeters(*contract.Coordinates, models.GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	})
	radius := s.InternalConfig.Verification.GeofenceRadiusInMeters
	if distance > radius {
		return distance, exceptions.ErrOutsideGeofence(nil, distance, radius)
	}
	return distance, nil
}

func (s *verificationService) archiveFrame(ctx context.Context, doctorID string, frame []byte, contentType string) (string, error) {
	now := s.Now()
	objectName := fmt.Sprintf("%s/%s/%d", constvars.StoragePrefixFacialData, doctorID, now.Unix())

	_, err := s.Storage.UploadObject(ctx, bytes.NewReader(frame), int64(len(frame)), objectName, contentType, s.InternalConfig.Minio.BucketName)
	if err != nil {
		return "", err
	}
	err = s.FacialDataRepository.AppendObject(ctx, doctorID, objectName, now)
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *verificationService) EnrollFace(ctx context.Context, request *requests.EnrollFace) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("verificationService.EnrollFace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := s.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}
	if session.IsNotDoctor() {
		return exceptions.ErrNotMatchRoleType(nil)
	}

	frame, contentType, _, err := utils.DecodeBase64Image(request.Frame)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}

	objectName := fmt.Sprintf("%s/%s/reference", constvars.StoragePrefixFacialData, session.UserID)
	_, err = s.Storage.UploadObject(ctx, bytes.NewReader(frame), int64(len(frame)), objectName, contentType, s.InternalConfig.Minio.BucketName)
	if err != nil {
		return err
	}

	return s.DoctorProfileRepository.UpdateFields(ctx, session.UserID, map[string]interface{}{
		"faceReference": objectName,
		"updatedAt":     s.Now(),
	})
}
