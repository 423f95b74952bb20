package availability

import (
	"context"
	"fmt"
	"plantao-service/internal/app/config"
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

type availabilityUsecase struct {
	TimeSlotRepository contracts.TimeSlotRepository
	Transactor         contracts.Transactor
	LockerService      contracts.LockerService
	SessionService     contracts.SessionService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	timeSlotRepository contracts.TimeSlotRepository,
	transactor contracts.Transactor,
	lockerService contracts.LockerService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			TimeSlotRepository: timeSlotRepository,
			Transactor:         transactor,
			LockerService:      lockerService,
			SessionService:     sessionService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) SubmitAvailability(ctx context.Context, request *requests.SubmitAvailability) (*responses.SubmitAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.SubmitAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	err = ValidateCandidate(request.Dates, request.StartTime, request.EndTime, request.Specialties)
	if err != nil {
		return nil, err
	}
	dates := uniqueSortedDates(request.Dates)

	unlock, err := uc.lockDoctorAvailability(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.TimeSlotRepository.FindByDoctorIDAndDates(ctx, session.UserID, dates)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SubmitAvailability error fetching existing slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	toCreate, skipped := plan(session.UserID, dates, request.StartTime, request.EndTime, request.Specialties, existing)
	now := time.Now()
	for i := range toCreate {
		toCreate[i].CreatedAt = now
		toCreate[i].UpdatedAt = now
	}

	if len(toCreate) > 0 {
		var insertedIDs []string
		// the callback may run again on a transient commit error, so every
		// attempt inserts fresh copies without an id
		err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
			documents := make([]models.TimeSlot, len(toCreate))
			copy(documents, toCreate)
			for i := range documents {
				documents[i].ID = ""
			}
			ids, err := uc.TimeSlotRepository.InsertMany(txCtx, documents)
			if err != nil {
				return err
			}
			insertedIDs = ids
			return nil
		})
		if err != nil {
			uc.Log.Error("availabilityUsecase.SubmitAvailability error inserting slots",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, session.UserID),
				zap.Error(err),
			)
			return nil, err
		}
		for i := range toCreate {
			toCreate[i].ID = insertedIDs[i]
		}
	}

	response := &responses.SubmitAvailability{
		Created: toCreate,
		Skipped: make([]responses.SkippedDate, 0, len(skipped)),
	}
	if response.Created == nil {
		response.Created = []models.TimeSlot{}
	}
	sortSlots(response.Created)
	for _, interval := range skipped {
		response.Skipped = append(response.Skipped, responses.SkippedDate{
			Date:   interval.Date,
			Reason: constvars.SkipReasonSlotConflict,
		})
	}

	uc.Log.Info("availabilityUsecase.SubmitAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
		zap.Int(constvars.LoggingCreatedCountKey, len(response.Created)),
		zap.Int(constvars.LoggingSkippedCountKey, len(response.Skipped)),
	)
	return response, nil
}

func (uc *availabilityUsecase) ListSlots(ctx context.Context, sessionData string) ([]models.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	slots, err := uc.TimeSlotRepository.FindByDoctorID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	sortSlots(slots)
	return slots, nil
}

func (uc *availabilityUsecase) UpdateSlot(ctx context.Context, request *requests.UpdateSlot) (*models.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.UpdateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	if len(request.Specialties) == 0 {
		return nil, exceptions.ErrNoSpecialtiesSelected(nil)
	}
	err = validateTimeRange(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockDoctorAvailability(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	slot, err := uc.ownedSlot(ctx, session.UserID, request.SlotID)
	if err != nil {
		return nil, err
	}

	sameDay, err := uc.TimeSlotRepository.FindByDoctorIDAndDates(ctx, session.UserID, []string{slot.Date})
	if err != nil {
		return nil, err
	}
	others := make([]models.TimeSlot, 0, len(sameDay))
	for _, other := range sameDay {
		if other.ID != slot.ID {
			others = append(others, other)
		}
	}

	candidate := Interval{Date: slot.Date, Start: request.StartTime, End: request.EndTime}
	if conflicting, found := findConflict(candidate, others); found {
		return nil, exceptions.ErrSlotConflict(
			fmt.Errorf("overlaps slot %s %s-%s", conflicting.ID, conflicting.StartTime, conflicting.EndTime),
			slot.Date, request.StartTime, request.EndTime,
		)
	}

	slot.StartTime = request.StartTime
	slot.EndTime = request.EndTime
	slot.Specialties = request.Specialties
	slot.SetUpdatedAt()

	err = uc.TimeSlotRepository.Update(ctx, slot)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (uc *availabilityUsecase) DeleteSlot(ctx context.Context, request *requests.SlotByID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return err
	}

	deleted, err := uc.TimeSlotRepository.DeleteByID(ctx, session.UserID, request.SlotID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrResourceNotFound(nil, "slot")
	}
	return nil
}

func (uc *availabilityUsecase) doctorSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func (uc *availabilityUsecase) ownedSlot(ctx context.Context, doctorID, slotID string) (*models.TimeSlot, error) {
	slot, err := uc.TimeSlotRepository.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil || slot.DoctorID != doctorID {
		return nil, exceptions.ErrResourceNotFound(nil, "slot")
	}
	return slot, nil
}

// lockDoctorAvailability serializes writes to one doctor's slots across
// instances. The returned func releases the lock.
func (uc *availabilityUsecase) lockDoctorAvailability(ctx context.Context, doctorID string) (func(), error) {
	key := fmt.Sprintf(constvars.RedisKeyAvailabilityLockFormat, doctorID)
	ttl := time.Duration(uc.InternalConfig.App.AvailabilityLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAvailabilityLocked(nil, doctorID)
	}

	return func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			uc.Log.Warn("availabilityUsecase failed to release lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}
