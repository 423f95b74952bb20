package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, sessionData string) (*models.DoctorProfile, error)
	UpdatePersonal(ctx context.Context, request *requests.UpdatePersonalInfo) (*models.DoctorProfile, error)
	UpdateProfessional(ctx context.Context, request *requests.UpdateProfessionalInfo) (*models.DoctorProfile, error)
	UpdateFinancial(ctx context.Context, request *requests.UpdateFinancialInfo) (*models.DoctorProfile, error)
	UploadProfilePhoto(ctx context.Context, request *requests.UploadFile) (*models.DoctorProfile, error)
	UploadDocument(ctx context.Context, request *requests.UploadFile) (*models.DocumentRef, error)
	FinalizeDocuments(ctx context.Context, sessionData string) (*models.DoctorProfile, error)
}

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *models.DoctorProfile) error
	FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error)
	// UpdateFields sets the given dotted paths, creating the profile when missing.
	UpdateFields(ctx context.Context, doctorID string, fields map[string]interface{}) error
}
