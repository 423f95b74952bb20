package reminders

import (
	"context"
	"fmt"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL          = 2 * time.Minute
	defaultLeadTimeInHours = 24
)

// Worker publishes a reminder for every upcoming shift that starts within the
// configured lead time and has not been reminded yet.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	contracts contracts.ContractRepository
	profiles  contracts.DoctorProfileRepository
	mailer    contracts.MailerService
	now       func() time.Time
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	contractRepository contracts.ContractRepository,
	doctorProfileRepository contracts.DoctorProfileRepository,
	mailerService contracts.MailerService,
) *Worker {
	return &Worker{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		contracts: contractRepository,
		profiles:  doctorProfileRepository,
		mailer:    mailerService,
		now:       time.Now,
	}
}

// Start schedules the worker. It is a no-op when no cron schedule is configured.
func (w *Worker) Start(ctx context.Context) error {
	schedule := w.cfg.App.ReminderCronSpec
	if schedule == "" {
		w.log.Info("reminders.worker: disabled, no cron schedule configured")
		return nil
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(schedule, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.cancel()
		return fmt.Errorf("reminders.worker: invalid cron schedule %q: %w", schedule, err)
	}
	c.Start()
	w.cron = c
	w.log.Info("reminders.worker: started", zap.String("schedule", schedule))
	return nil
}

// Stop cancels a running job and waits for it to return. It is safe to call
// more than once.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyRemindersLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyRemindersLeader, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLeaderLock(refreshCtx, token)

	loc := w.location()
	now := w.now().In(loc)
	dates := []string{
		now.Format(constvars.DateLayout),
		now.AddDate(0, 0, 1).Format(constvars.DateLayout),
	}

	due, err := w.contracts.FindDueForReminder(ctx, dates)
	if err != nil {
		w.log.Warn("reminders.worker: finding due contracts failed", zap.Error(err))
		return
	}

	sent := 0
	for i := range due {
		if ctx.Err() != nil {
			return
		}
		if !w.withinLeadTime(&due[i], now, loc) {
			continue
		}
		if err := w.remind(ctx, &due[i], now); err != nil {
			w.log.Warn("reminders.worker: reminder failed",
				zap.String(constvars.LoggingContractIDKey, due[i].ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	w.log.Info("reminders.worker: run finished",
		zap.Int("due", len(due)),
		zap.Int("sent", sent),
	)
}

func (w *Worker) refreshLeaderLock(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyRemindersLeader, token, leaderLockTTL); err != nil {
				w.log.Warn("reminders.worker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}

// withinLeadTime reports whether the shift has not started yet and starts no
// later than the lead time from now.
func (w *Worker) withinLeadTime(contract *models.Contract, now time.Time, loc *time.Location) bool {
	start, err := contract.ShiftStart(loc)
	if err != nil {
		w.log.Warn("reminders.worker: unparseable shift start",
			zap.String(constvars.LoggingContractIDKey, contract.ID),
			zap.Error(err),
		)
		return false
	}
	lead := time.Duration(w.cfg.App.ReminderLeadTimeInHours) * time.Hour
	if lead <= 0 {
		lead = defaultLeadTimeInHours * time.Hour
	}
	return start.After(now) && !start.After(now.Add(lead))
}

func (w *Worker) remind(ctx context.Context, contract *models.Contract, now time.Time) error {
	name := ""
	profile, err := w.profiles.FindByID(ctx, contract.DoctorID)
	if err != nil {
		return err
	}
	if profile != nil {
		name = profile.Personal.Name
	}

	err = w.mailer.PublishNotification(ctx, &requests.Notification{
		Type:       constvars.NotificationTypeShiftReminder,
		UserID:     contract.DoctorID,
		ContractID: contract.ID,
		Title:      constvars.EmailShiftReminderSubjectMessage,
		Body:       fmt.Sprintf(constvars.EmailBodyShiftReminder, name, contract.Hospital, contract.Date, contract.Time, contract.Location),
		Data: map[string]string{
			"hospitalId": contract.HospitalID,
			"date":       contract.Date,
			"time":       contract.Time,
		},
	})
	if err != nil {
		return err
	}
	return w.contracts.MarkReminded(ctx, contract.ID, now)
}

func (w *Worker) location() *time.Location {
	loc, err := time.LoadLocation(w.cfg.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
