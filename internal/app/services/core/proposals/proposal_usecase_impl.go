package proposals

import (
	"context"
	"fmt"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type proposalUsecase struct {
	ProposalRepository contracts.ProposalRepository
	ContractRepository contracts.ContractRepository
	Transactor         contracts.Transactor
	SessionService     contracts.SessionService
	MailerService      contracts.MailerService
	Now                func() time.Time
	Log                *zap.Logger
}

var (
	proposalUsecaseInstance contracts.ProposalUsecase
	onceProposalUsecase     sync.Once
)

func NewProposalUsecase(
	proposalRepository contracts.ProposalRepository,
	contractRepository contracts.ContractRepository,
	transactor contracts.Transactor,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.ProposalUsecase {
	onceProposalUsecase.Do(func() {
		proposalUsecaseInstance = &proposalUsecase{
			ProposalRepository: proposalRepository,
			ContractRepository: contractRepository,
			Transactor:         transactor,
			SessionService:     sessionService,
			MailerService:      mailerService,
			Now:                time.Now,
			Log:                logger,
		}
	})
	return proposalUsecaseInstance
}

func (uc *proposalUsecase) CreateProposal(ctx context.Context, request *requests.CreateProposal) (*models.Proposal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.CreateProposal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotHospital() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	proposal := &models.Proposal{
		DoctorID:      request.DoctorID,
		HospitalID:    session.UserID,
		Hospital:      session.Name,
		Specialty:     request.Specialty,
		Date:          request.Date,
		Time:          request.Time,
		DurationHours: request.DurationHours,
		Location:      request.Location,
		Description:   request.Description,
		Requirements:  request.Requirements,
		Value:         request.Value,
		Status:        constvars.ProposalStatusPending,
		HospitalProfile: models.HospitalProfile{
			Name:        session.Name,
			Description: request.HospitalProfile.Description,
			Founded:     request.HospitalProfile.Founded,
			Employees:   request.HospitalProfile.Employees,
			Specialties: request.HospitalProfile.Specialties,
		},
	}
	if request.Latitude != nil && request.Longitude != nil {
		proposal.Coordinates = &models.GeoPoint{Latitude: *request.Latitude, Longitude: *request.Longitude}
	}
	now := uc.Now()
	proposal.CreatedAt = now
	proposal.UpdatedAt = now

	proposal.ID, err = uc.ProposalRepository.Create(ctx, proposal)
	if err != nil {
		uc.Log.Error("proposalUsecase.CreateProposal error inserting proposal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("proposalUsecase.CreateProposal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProposalIDKey, proposal.ID),
	)
	return proposal, nil
}

// ListProposals returns what a doctor received or what a hospital sent.
func (uc *proposalUsecase) ListProposals(ctx context.Context, request *requests.ListProposals) ([]models.Proposal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.ListProposals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsHospital() {
		return uc.ProposalRepository.FindByHospitalID(ctx, session.UserID, request.Status)
	}
	return uc.ProposalRepository.FindByDoctorID(ctx, session.UserID, request.Status)
}

func (uc *proposalUsecase) ListMatchingProposals(ctx context.Context, request *requests.ListMatchingProposals) ([]models.Proposal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.ListMatchingProposals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	return uc.ProposalRepository.FindPendingForDoctor(ctx, session.UserID, []string{request.Specialty})
}

// GetProposal returns nil when the proposal does not exist or the caller may not see it.
func (uc *proposalUsecase) GetProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.GetProposal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProposalIDKey, request.ProposalID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	proposal, err := uc.ProposalRepository.FindByID(ctx, request.ProposalID)
	if err != nil || proposal == nil {
		return nil, err
	}
	if !visibleTo(proposal, session) {
		return nil, nil
	}
	return proposal, nil
}

func (uc *proposalUsecase) AcceptProposal(ctx context.Context, request *requests.ProposalByID) (*models.Contract, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.AcceptProposal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProposalIDKey, request.ProposalID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	proposal, err := uc.respondableProposal(ctx, session, request.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	var contract *models.Contract
	// rebuilt on every attempt so a retried transaction never reuses an id
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		contract = proposal.ToContract(session.UserID, now)
		accepted, err := uc.ProposalRepository.Respond(txCtx, proposal.ID, session.UserID, constvars.ProposalStatusAccepted, now)
		if err != nil {
			return err
		}
		if !accepted {
			return exceptions.ErrProposalNotPending(nil, proposal.ID)
		}

		contractID, err := uc.ContractRepository.Create(txCtx, contract)
		if err != nil {
			return err
		}
		contract.ID = contractID
		return nil
	})
	if err != nil {
		uc.Log.Error("proposalUsecase.AcceptProposal error signing contract",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProposalIDKey, proposal.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notifyContractSigned(ctx, contract)

	uc.Log.Info("proposalUsecase.AcceptProposal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProposalIDKey, proposal.ID),
		zap.String(constvars.LoggingContractIDKey, contract.ID),
	)
	return contract, nil
}

func (uc *proposalUsecase) RejectProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("proposalUsecase.RejectProposal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProposalIDKey, request.ProposalID),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	proposal, err := uc.respondableProposal(ctx, session, request.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	rejected, err := uc.ProposalRepository.Respond(ctx, proposal.ID, session.UserID, constvars.ProposalStatusRejected, now)
	if err != nil {
		return nil, err
	}
	if !rejected {
		return nil, exceptions.ErrProposalNotPending(nil, proposal.ID)
	}

	proposal.Status = constvars.ProposalStatusRejected
	proposal.DoctorID = session.UserID
	proposal.RespondedAt = &now
	proposal.UpdatedAt = now
	return proposal, nil
}

func (uc *proposalUsecase) doctorSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func (uc *proposalUsecase) respondableProposal(ctx context.Context, session *models.Session, proposalID string) (*models.Proposal, error) {
	proposal, err := uc.ProposalRepository.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil || !visibleTo(proposal, session) {
		return nil, exceptions.ErrResourceNotFound(nil, "proposal")
	}
	if !proposal.IsPending() {
		return nil, exceptions.ErrProposalNotPending(nil, proposalID)
	}
	return proposal, nil
}

// notifyContractSigned tells the hospital. The contract is already committed,
// so a publish failure is only logged.
func (uc *proposalUsecase) notifyContractSigned(ctx context.Context, contract *models.Contract) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.MailerService.PublishNotification(ctx, &requests.Notification{
		Type:       constvars.NotificationTypeContractSigned,
		UserID:     contract.HospitalID,
		ContractID: contract.ID,
		Title:      constvars.EmailContractSignedSubjectMessage,
		Body:       fmt.Sprintf(constvars.EmailBodyContractSigned, contract.Specialty, contract.Date, contract.Time),
		Data: map[string]string{
			"doctorId":   contract.DoctorID,
			"proposalId": contract.ProposalID,
		},
	})
	if err != nil {
		uc.Log.Warn("proposalUsecase.AcceptProposal failed to publish contract signed notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContractIDKey, contract.ID),
			zap.Error(err),
		)
	}
}

// visibleTo lets hospitals see their own proposals and doctors see the ones
// addressed to them or still open to anyone.
func visibleTo(proposal *models.Proposal, session *models.Session) bool {
	if session.IsHospital() {
		return proposal.HospitalID == session.UserID
	}
	return proposal.DoctorID == "" || proposal.DoctorID == session.UserID
}
