package profiles

import (
	"context"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts/mocks"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type profileFixture struct {
	usecase  *profileUsecase
	profiles *mocks.DoctorProfileRepository
	storage  *mocks.Storage
	sessions *mocks.SessionService
	now      time.Time
}

func newProfileFixture(userType string) *profileFixture {
	f := &profileFixture{
		profiles: new(mocks.DoctorProfileRepository),
		storage:  new(mocks.Storage),
		sessions: new(mocks.SessionService),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.usecase = &profileUsecase{
		DoctorProfileRepository: f.profiles,
		Storage:                 f.storage,
		SessionService:          f.sessions,
		InternalConfig: &config.InternalConfig{
			App:   config.App{MinioPreSignedUrlObjectExpiryTimeInHours: 2},
			Minio: config.AppMinio{BucketName: "plantao", DocumentMaxSizeInMB: 5, ProfilePhotoMaxSizeInMB: 2},
		},
		Now: func() time.Time { return f.now },
		Log: zap.NewNop(),
	}
	f.sessions.On("ParseSessionData", mock.Anything, "session").
		Return(&models.Session{UserID: "doc-1", UserType: userType}, nil)
	return f
}

func upload(key, contentType string, size int64) *requests.UploadFile {
	return &requests.UploadFile{
		SessionData: "session",
		DocumentKey: key,
		FileName:    key + ".pdf",
		ContentType: contentType,
		Size:        size,
		File:        strings.NewReader("content"),
	}
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("photo is resolved into a presigned url", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{
			ID:       "doc-1",
			Personal: models.PersonalInfo{Name: "Ana", PhotoObjectName: "profilePhotos/doc-1"},
		}, nil)
		f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "plantao", "profilePhotos/doc-1", 2*time.Hour).
			Return("https://minio/plantao/profilePhotos/doc-1?sig", nil)

		profile, err := f.usecase.GetProfile(ctx, "session")
		require.NoError(t, err)
		assert.Equal(t, "https://minio/plantao/profilePhotos/doc-1?sig", profile.Personal.PhotoURL)
	})

	t.Run("hospital has no doctor profile", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeHospital)

		_, err := f.usecase.GetProfile(ctx, "session")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("missing profile", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(nil, nil)

		_, err := f.usecase.GetProfile(ctx, "session")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestProfileUsecase_UpdateSections(t *testing.T) {
	ctx := context.Background()

	t.Run("personal uses dotted paths so the photo survives", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, replacesSection := fields["personal"]
			return !replacesSection && fields["personal.cpf"] == "12345678901" && fields["updatedAt"] == f.now
		})).Return(nil)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1"}, nil)

		_, err := f.usecase.UpdatePersonal(ctx, &requests.UpdatePersonalInfo{
			SessionData: "session",
			Name:        "Ana",
			Email:       "ana@example.com",
			CPF:         "12345678901",
		})
		require.NoError(t, err)
		f.profiles.AssertExpectations(t)
	})

	t.Run("professional replaces the section", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			info, ok := fields["professional"].(models.ProfessionalInfo)
			return ok && info.CRM == "123456-SP" && len(info.Specialties) == 2
		})).Return(nil)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1"}, nil)

		_, err := f.usecase.UpdateProfessional(ctx, &requests.UpdateProfessionalInfo{
			SessionData: "session",
			CRM:         "123456-SP",
			Specialties: []string{"Cardiologia", "Clínica Geral"},
		})
		require.NoError(t, err)
	})

	t.Run("financial replaces the section", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			info, ok := fields["financial"].(models.FinancialInfo)
			return ok && info.HourlyRate == 150 && info.Pix == "ana@example.com"
		})).Return(nil)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1"}, nil)

		_, err := f.usecase.UpdateFinancial(ctx, &requests.UpdateFinancialInfo{
			SessionData: "session",
			HourlyRate:  150,
			Pix:         "ana@example.com",
		})
		require.NoError(t, err)
	})
}

func TestProfileUsecase_UploadProfilePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("photo is stored under the user id", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.storage.On("UploadObject", mock.Anything, mock.Anything, int64(1024), "profilePhotos/doc-1", constvars.MIMEImageJPEG, "plantao").
			Return("profilePhotos/doc-1", nil)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["personal.photoObjectName"] == "profilePhotos/doc-1"
		})).Return(nil)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{
			ID:       "doc-1",
			Personal: models.PersonalInfo{PhotoObjectName: "profilePhotos/doc-1"},
		}, nil)
		f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "plantao", "profilePhotos/doc-1", 2*time.Hour).Return("https://signed", nil)

		profile, err := f.usecase.UploadProfilePhoto(ctx, upload("", constvars.MIMEImageJPEG, 1024))
		require.NoError(t, err)
		assert.Equal(t, "https://signed", profile.Personal.PhotoURL)
	})

	t.Run("pdf is not a photo", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)

		_, err := f.usecase.UploadProfilePhoto(ctx, upload("", constvars.MIMEApplicationPDF, 1024))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnsupportedMediaType, exceptions.StatusCodeOf(err))
	})
}

func TestProfileUsecase_UploadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("document is stored under the cpf", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("FindByID", mock.Anything, "doc-1").
			Return(&models.DoctorProfile{ID: "doc-1", Personal: models.PersonalInfo{CPF: "12345678901"}}, nil)
		f.storage.On("UploadObject", mock.Anything, mock.Anything, int64(2048), "documents/12345678901/crmFile", constvars.MIMEApplicationPDF, "plantao").
			Return("documents/12345678901/crmFile", nil)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
			ref, ok := fields["documents.crmFile"].(models.DocumentRef)
			return ok && ref.ObjectName == "documents/12345678901/crmFile" && ref.UploadedAt.Equal(f.now)
		})).Return(nil)

		ref, err := f.usecase.UploadDocument(ctx, upload(constvars.DocumentCRMFile, constvars.MIMEApplicationPDF, 2048))
		require.NoError(t, err)
		assert.Equal(t, "crmFile.pdf", ref.FileName)
	})

	t.Run("without cpf the user id is the folder", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1"}, nil)
		f.storage.On("UploadObject", mock.Anything, mock.Anything, int64(10), "documents/doc-1/rgFile", constvars.MIMEImagePNG, "plantao").
			Return("documents/doc-1/rgFile", nil)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", mock.Anything).Return(nil)

		_, err := f.usecase.UploadDocument(ctx, upload(constvars.DocumentRGFile, constvars.MIMEImagePNG, 10))
		require.NoError(t, err)
		f.storage.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		file   *requests.UploadFile
		status int
	}{
		{"unknown key", upload("passport", constvars.MIMEApplicationPDF, 10), constvars.StatusBadRequest},
		{"unsupported type", upload(constvars.DocumentCurriculum, "application/msword", 10), constvars.StatusUnsupportedMediaType},
		{"over five megabytes", upload(constvars.DocumentCurriculum, constvars.MIMEApplicationPDF, 5<<20+1), constvars.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProfileFixture(constvars.UserTypeDoctor)

			_, err := f.usecase.UploadDocument(ctx, tt.file)
			require.Error(t, err)
			assert.Equal(t, tt.status, exceptions.StatusCodeOf(err))
			f.storage.AssertNotCalled(t, "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProfileUsecase_FinalizeDocuments(t *testing.T) {
	ctx := context.Background()

	complete := map[string]models.DocumentRef{}
	for _, key := range constvars.MandatoryDocuments {
		complete[key] = models.DocumentRef{ObjectName: "documents/doc-1/" + key}
	}

	t.Run("all mandatory documents present", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1", Documents: complete}, nil)
		f.profiles.On("UpdateFields", mock.Anything, "doc-1", map[string]interface{}{
			"documentsSubmittedAt": f.now,
			"updatedAt":            f.now,
		}).Return(nil)

		profile, err := f.usecase.FinalizeDocuments(ctx, "session")
		require.NoError(t, err)
		require.NotNil(t, profile.DocumentsSubmittedAt)
		assert.Equal(t, f.now, *profile.DocumentsSubmittedAt)
	})

	t.Run("missing documents are listed", func(t *testing.T) {
		f := newProfileFixture(constvars.UserTypeDoctor)
		partial := map[string]models.DocumentRef{}
		for key, ref := range complete {
			partial[key] = ref
		}
		delete(partial, constvars.DocumentCPFFile)
		delete(partial, constvars.DocumentDebtRecord)
		f.profiles.On("FindByID", mock.Anything, "doc-1").Return(&models.DoctorProfile{ID: "doc-1", Documents: partial}, nil)

		_, err := f.usecase.FinalizeDocuments(ctx, "session")
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "cpfFile, debtRecord")
		f.profiles.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMissingMandatoryDocuments(t *testing.T) {
	assert.Equal(t, constvars.MandatoryDocuments, MissingMandatoryDocuments(nil))
	assert.True(t, IsDocumentKey(constvars.DocumentRecommendationLetter))
	assert.False(t, IsDocumentKey("selfie"))
}
