package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"time"
)

type ShiftContractUsecase interface {
	ListContracts(ctx context.Context, request *requests.ListContracts) ([]responses.Contract, error)
	GetContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error)
	CheckIn(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error)
	CheckOut(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error)
	CancelContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error)
}

// ContractTransition is applied only while the stored contract still has
// FromStatus and FromAttendance.
type ContractTransition struct {
	FromStatus     string
	FromAttendance string
	ToStatus       string
	ToAttendance   string
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	CanceledAt     *time.Time
	UpdatedAt      time.Time
}

type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) (string, error)
	FindByID(ctx context.Context, contractID string) (*models.Contract, error)
	FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Contract, error)
	ApplyTransition(ctx context.Context, contractID, doctorID string, transition ContractTransition) (bool, error)
	FindDueForReminder(ctx context.Context, dates []string) ([]models.Contract, error)
	MarkReminded(ctx context.Context, contractID string, remindedAt time.Time) error
}
