package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	SubmitAvailability(ctx context.Context, request *requests.SubmitAvailability) (*responses.SubmitAvailability, error)
	ListSlots(ctx context.Context, sessionData string) ([]models.TimeSlot, error)
	UpdateSlot(ctx context.Context, request *requests.UpdateSlot) (*models.TimeSlot, error)
	DeleteSlot(ctx context.Context, request *requests.SlotByID) error
}

type TimeSlotRepository interface {
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.TimeSlot, error)
	FindByDoctorIDAndDates(ctx context.Context, doctorID string, dates []string) ([]models.TimeSlot, error)
	FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	CountByDoctorID(ctx context.Context, doctorID string) (int64, error)
	InsertMany(ctx context.Context, slots []models.TimeSlot) ([]string, error)
	Update(ctx context.Context, slot *models.TimeSlot) error
	DeleteByID(ctx context.Context, doctorID, slotID string) (bool, error)
}
