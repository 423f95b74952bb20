package dashboard

import (
	"context"
	"plantao-service/internal/app/config"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/responses"
	"plantao-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	TimeSlotRepository      contracts.TimeSlotRepository
	ProposalRepository      contracts.ProposalRepository
	ContractRepository      contracts.ContractRepository
	DoctorProfileRepository contracts.DoctorProfileRepository
	SessionService          contracts.SessionService
	InternalConfig          *config.InternalConfig
	Now                     func() time.Time
	Log                     *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	timeSlotRepository contracts.TimeSlotRepository,
	proposalRepository contracts.ProposalRepository,
	contractRepository contracts.ContractRepository,
	doctorProfileRepository contracts.DoctorProfileRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			TimeSlotRepository:      timeSlotRepository,
			ProposalRepository:      proposalRepository,
			ContractRepository:      contractRepository,
			DoctorProfileRepository: doctorProfileRepository,
			SessionService:          sessionService,
			InternalConfig:          internalConfig,
			Now:                     time.Now,
			Log:                     logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) GetSummary(ctx context.Context, sessionData string) (*responses.DashboardSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	slotCount, err := uc.TimeSlotRepository.CountByDoctorID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	proposals, err := uc.pendingProposals(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	contractList, err := uc.ContractRepository.FindByDoctorID(ctx, session.UserID, "")
	if err != nil {
		return nil, err
	}

	summary := summarizeContracts(contractList, uc.Now().In(uc.location()))
	summary.AvailableDays = int(slotCount)
	summary.NewProposals = len(proposals)
	summary.RecentProposals = proposals
	if len(summary.RecentProposals) > constvars.DashboardRecentProposalsLimit {
		summary.RecentProposals = summary.RecentProposals[:constvars.DashboardRecentProposalsLimit]
	}
	return summary, nil
}

// pendingProposals merges proposals addressed to the doctor with open ones in
// the doctor's specialties, newest first.
func (uc *dashboardUsecase) pendingProposals(ctx context.Context, doctorID string) ([]models.Proposal, error) {
	assigned, err := uc.ProposalRepository.FindByDoctorID(ctx, doctorID, constvars.ProposalStatusPending)
	if err != nil {
		return nil, err
	}

	profile, err := uc.DoctorProfileRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	var matching []models.Proposal
	if profile != nil && len(profile.Professional.Specialties) > 0 {
		matching, err = uc.ProposalRepository.FindPendingForDoctor(ctx, doctorID, profile.Professional.Specialties)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(assigned)+len(matching))
	merged := make([]models.Proposal, 0, len(assigned)+len(matching))
	for _, list := range [][]models.Proposal{assigned, matching} {
		for _, proposal := range list {
			if seen[proposal.ID] {
				continue
			}
			seen[proposal.ID] = true
			merged = append(merged, proposal)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

// summarizeContracts expects contracts ordered by date and time. Completed
// hours are grouped per month, oldest first.
func summarizeContracts(list []models.Contract, now time.Time) *responses.DashboardSummary {
	summary := &responses.DashboardSummary{
		MonthlyHours:    []responses.MonthHours{},
		UpcomingShifts:  []models.Contract{},
		RecentProposals: []models.Proposal{},
	}
	currentMonth := now.Format(constvars.MonthLayout)
	hoursByMonth := make(map[string]int)

	for _, contract := range list {
		switch {
		case contract.IsUpcoming():
			summary.ActiveContracts++
			if len(summary.UpcomingShifts) < constvars.DashboardUpcomingShiftsLimit {
				summary.UpcomingShifts = append(summary.UpcomingShifts, contract)
			}
		case contract.IsCompleted():
			summary.HoursWorked += contract.DurationHours
			if len(contract.Date) >= len(constvars.MonthLayout) {
				hoursByMonth[contract.Date[:len(constvars.MonthLayout)]] += contract.DurationHours
			}
		}
	}

	for month, hours := range hoursByMonth {
		summary.MonthlyHours = append(summary.MonthlyHours, responses.MonthHours{Month: month, Hours: hours})
	}
	sort.Slice(summary.MonthlyHours, func(i, j int) bool {
		return summary.MonthlyHours[i].Month < summary.MonthlyHours[j].Month
	})
	summary.CurrentMonthHours = hoursByMonth[currentMonth]
	return summary
}

func (uc *dashboardUsecase) location() *time.Location {
	loc, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
