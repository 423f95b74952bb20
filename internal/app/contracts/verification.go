package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"time"
)

type VerificationService interface {
	Verify(ctx context.Context, doctorID string, contract *models.Contract, frame string, location *requests.DeviceLocation) (*responses.Verification, error)
	EnrollFace(ctx context.Context, request *requests.EnrollFace) error
}

// FaceMatcher scores how likely candidate shows the same face as reference, in [0,1].
type FaceMatcher interface {
	Match(ctx context.Context, reference, candidate []byte) (float64, error)
}

type FacialDataRepository interface {
	AppendObject(ctx context.Context, doctorID, objectName string, updatedAt time.Time) error
}
