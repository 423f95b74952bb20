package shiftcontracts

import (
	"context"
	"fmt"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type shiftContractUsecase struct {
	ContractRepository  contracts.ContractRepository
	VerificationService contracts.VerificationService
	LockerService       contracts.LockerService
	SessionService      contracts.SessionService
	Now                 func() time.Time
	Log                 *zap.Logger
}

var (
	shiftContractUsecaseInstance contracts.ShiftContractUsecase
	onceShiftContractUsecase     sync.Once
)

func NewShiftContractUsecase(
	contractRepository contracts.ContractRepository,
	verificationService contracts.VerificationService,
	lockerService contracts.LockerService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ShiftContractUsecase {
	onceShiftContractUsecase.Do(func() {
		shiftContractUsecaseInstance = &shiftContractUsecase{
			ContractRepository:  contractRepository,
			VerificationService: verificationService,
			LockerService:       lockerService,
			SessionService:      sessionService,
			Now:                 time.Now,
			Log:                 logger,
		}
	})
	return shiftContractUsecaseInstance
}

func (uc *shiftContractUsecase) ListContracts(ctx context.Context, request *requests.ListContracts) ([]responses.Contract, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftContractUsecase.ListContracts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	found, err := uc.ContractRepository.FindByDoctorID(ctx, session.UserID, request.Status)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Contract, 0, len(found))
	for i := range found {
		result = append(result, *toResponse(&found[i], nil))
	}
	return result, nil
}

func (uc *shiftContractUsecase) GetContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftContractUsecase.GetContract called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContractIDKey, request.ContractID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	contract, err := uc.ownedContract(ctx, session.UserID, request.ContractID)
	if err != nil {
		return nil, err
	}
	return toResponse(contract, nil), nil
}

func (uc *shiftContractUsecase) CheckIn(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error) {
	return uc.attend(ctx, constvars.ContractActionCheckIn, request)
}

func (uc *shiftContractUsecase) CheckOut(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error) {
	return uc.attend(ctx, constvars.ContractActionCheckOut, request)
}

// attend runs the verification gate and then records the attendance change.
// Verification archives frames, so the contract is locked for the duration.
func (uc *shiftContractUsecase) attend(ctx context.Context, action string, request *requests.AttendanceVerification) (*responses.Contract, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftContractUsecase.attend called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContractIDKey, request.ContractID),
		zap.String("action", action),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockContract(ctx, request.ContractID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	contract, err := uc.ownedContract(ctx, session.UserID, request.ContractID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(contract, action) {
		return nil, exceptions.ErrContractInvalidTransition(nil, contract.ID, action, contract.Status, contract.Attendance)
	}

	if action == constvars.ContractActionCheckOut && contract.CheckInTime == nil {
		return nil, exceptions.ErrContractInvalidTransition(nil, contract.ID, action, contract.Status, contract.Attendance)
	}

	verification, err := uc.VerificationService.Verify(ctx, session.UserID, contract, request.Frame, request.Location)
	if err != nil {
		uc.Log.Info("shiftContractUsecase.attend verification rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContractIDKey, contract.ID),
			zap.Error(err),
		)
		return nil, err
	}

	// timestamps are persisted at millisecond precision
	now := uc.Now().Truncate(time.Millisecond)
	if action == constvars.ContractActionCheckOut && !now.After(*contract.CheckInTime) {
		return nil, exceptions.ErrCheckOutBeforeCheckIn(nil, now, *contract.CheckInTime)
	}

	err = uc.apply(ctx, contract, session.UserID, action, now)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("shiftContractUsecase.attend succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContractIDKey, contract.ID),
		zap.String("action", action),
		zap.Float64(constvars.LoggingMatchScoreKey, verification.MatchScore),
		zap.Float64(constvars.LoggingDistanceMetersKey, verification.DistanceMeters),
	)
	return toResponse(contract, verification), nil
}

func (uc *shiftContractUsecase) CancelContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftContractUsecase.CancelContract called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContractIDKey, request.ContractID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	contract, err := uc.ownedContract(ctx, session.UserID, request.ContractID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(contract, constvars.ContractActionCancel) {
		return nil, exceptions.ErrContractInvalidTransition(nil, contract.ID, constvars.ContractActionCancel, contract.Status, contract.Attendance)
	}

	err = uc.apply(ctx, contract, session.UserID, constvars.ContractActionCancel, uc.Now().Truncate(time.Millisecond))
	if err != nil {
		return nil, err
	}
	return toResponse(contract, nil), nil
}

// apply writes the transition conditionally and mirrors it on contract.
func (uc *shiftContractUsecase) apply(ctx context.Context, contract *models.Contract, doctorID, action string, now time.Time) error {
	transition := buildTransition(action, now)
	applied, err := uc.ContractRepository.ApplyTransition(ctx, contract.ID, doctorID, transition)
	if err != nil {
		return err
	}
	if !applied {
		// someone else moved the contract after we read it
		return exceptions.ErrContractInvalidTransition(nil, contract.ID, action, contract.Status, contract.Attendance)
	}
	applyToModel(contract, transition)
	return nil
}

func (uc *shiftContractUsecase) doctorSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func (uc *shiftContractUsecase) ownedContract(ctx context.Context, doctorID, contractID string) (*models.Contract, error) {
	contract, err := uc.ContractRepository.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil || contract.DoctorID != doctorID {
		return nil, exceptions.ErrResourceNotFound(nil, "contract")
	}
	return contract, nil
}

func (uc *shiftContractUsecase) lockContract(ctx context.Context, contractID string) (func(), error) {
	key := fmt.Sprintf(constvars.RedisKeyContractLockFormat, contractID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, constvars.ContractLockTTLInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrContractLocked(nil, contractID)
	}

	return func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			uc.Log.Warn("shiftContractUsecase failed to release lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func toResponse(contract *models.Contract, verification *responses.Verification) *responses.Contract {
	return &responses.Contract{
		Contract:     *contract,
		NextAction:   NextAction(contract),
		CanCancel:    CanTransition(contract, constvars.ContractActionCancel),
		Verification: verification,
	}
}
