package proposals

import (
	"context"
	"errors"
	"plantao-service/internal/app/contracts/mocks"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type proposalFixture struct {
	usecase   *proposalUsecase
	proposals *mocks.ProposalRepository
	contracts *mocks.ContractRepository
	tx        *mocks.Transactor
	sessions  *mocks.SessionService
	mailer    *mocks.MailerService
}

func newProposalFixture(session *models.Session) *proposalFixture {
	f := &proposalFixture{
		proposals: new(mocks.ProposalRepository),
		contracts: new(mocks.ContractRepository),
		tx:        new(mocks.Transactor),
		sessions:  new(mocks.SessionService),
		mailer:    new(mocks.MailerService),
	}
	f.usecase = &proposalUsecase{
		ProposalRepository: f.proposals,
		ContractRepository: f.contracts,
		Transactor:         f.tx,
		SessionService:     f.sessions,
		MailerService:      f.mailer,
		Now:                func() time.Time { return fixedNow },
		Log:                zap.NewNop(),
	}
	f.sessions.On("ParseSessionData", mock.Anything, "session").Return(session, nil)
	f.tx.On("WithTransaction", mock.Anything).Return(nil)
	return f
}

func doctorSession(id string) *models.Session {
	return &models.Session{UserID: id, UserType: constvars.UserTypeDoctor, Name: "Dra. Ana"}
}

func hospitalSession() *models.Session {
	return &models.Session{UserID: "hosp-1", UserType: constvars.UserTypeHospital, Name: "Hospital Central"}
}

func pendingProposal() *models.Proposal {
	return &models.Proposal{
		ID:            "prop-1",
		HospitalID:    "hosp-1",
		Hospital:      "Hospital Central",
		Specialty:     "Cardiologia",
		Date:          "2025-06-15",
		Time:          "19:00",
		DurationHours: 12,
		Location:      "Av. Paulista, 1000",
		Coordinates:   &models.GeoPoint{Latitude: -23.56, Longitude: -46.65},
		Value:         1800,
		Status:        constvars.ProposalStatusPending,
	}
}

func TestProposalUsecase_CreateProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("hospital identity comes from the session", func(t *testing.T) {
		f := newProposalFixture(hospitalSession())
		lat, lng := -23.56, -46.65
		f.proposals.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Proposal) bool {
			return p.HospitalID == "hosp-1" && p.Hospital == "Hospital Central" &&
				p.HospitalProfile.Name == "Hospital Central" &&
				p.Status == constvars.ProposalStatusPending &&
				p.Coordinates != nil && p.Coordinates.Latitude == lat &&
				p.CreatedAt.Equal(fixedNow)
		})).Return("prop-1", nil)

		proposal, err := f.usecase.CreateProposal(ctx, &requests.CreateProposal{
			SessionData:   "session",
			Specialty:     "Cardiologia",
			Date:          "2025-06-15",
			Time:          "19:00",
			DurationHours: 12,
			Location:      "Av. Paulista, 1000",
			Latitude:      &lat,
			Longitude:     &lng,
			Value:         1800,
		})
		require.NoError(t, err)
		assert.Equal(t, "prop-1", proposal.ID)
	})

	t.Run("doctors cannot create proposals", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))

		_, err := f.usecase.CreateProposal(ctx, &requests.CreateProposal{SessionData: "session"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		f.proposals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProposalUsecase_ListProposals(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor sees proposals addressed to them", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByDoctorID", mock.Anything, "doc-1", "pending").Return([]models.Proposal{*pendingProposal()}, nil)

		result, err := f.usecase.ListProposals(ctx, &requests.ListProposals{SessionData: "session", Status: "pending"})
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("hospital sees what it sent", func(t *testing.T) {
		f := newProposalFixture(hospitalSession())
		f.proposals.On("FindByHospitalID", mock.Anything, "hosp-1", "").Return([]models.Proposal{}, nil)

		result, err := f.usecase.ListProposals(ctx, &requests.ListProposals{SessionData: "session"})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestProposalUsecase_ListMatchingProposals(t *testing.T) {
	f := newProposalFixture(doctorSession("doc-1"))
	f.proposals.On("FindPendingForDoctor", mock.Anything, "doc-1", []string{"Cardiologia"}).
		Return([]models.Proposal{*pendingProposal()}, nil)

	result, err := f.usecase.ListMatchingProposals(context.Background(), &requests.ListMatchingProposals{
		SessionData: "session",
		Specialty:   "Cardiologia",
	})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestProposalUsecase_GetProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("absent proposal is nil", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		proposal, err := f.usecase.GetProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "missing"})
		require.NoError(t, err)
		assert.Nil(t, proposal)
	})

	t.Run("malformed id is nil", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "not-hex").Return(nil, nil)

		proposal, err := f.usecase.GetProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "not-hex"})
		require.NoError(t, err)
		assert.Nil(t, proposal)
	})

	t.Run("proposal assigned to another doctor is hidden", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		assigned := pendingProposal()
		assigned.DoctorID = "doc-2"
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(assigned, nil)

		proposal, err := f.usecase.GetProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		assert.Nil(t, proposal)
	})

	t.Run("open proposal is visible", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)

		proposal, err := f.usecase.GetProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		require.NotNil(t, proposal)
		assert.Equal(t, "Cardiologia", proposal.Specialty)
	})
}

func TestProposalUsecase_AcceptProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("accept signs a contract copying the shift", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)
		f.proposals.On("Respond", mock.Anything, "prop-1", "doc-1", constvars.ProposalStatusAccepted, fixedNow).Return(true, nil)
		f.contracts.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Contract) bool {
			return c.ProposalID == "prop-1" && c.DoctorID == "doc-1" && c.HospitalID == "hosp-1" &&
				c.Date == "2025-06-15" && c.Time == "19:00" && c.DurationHours == 12 && c.Value == 1800 &&
				c.Status == constvars.ContractStatusUpcoming && c.Attendance == constvars.AttendanceAwaitingCheckIn &&
				c.Coordinates != nil
		})).Return("contract-1", nil)
		f.mailer.On("PublishNotification", mock.Anything, mock.MatchedBy(func(n *requests.Notification) bool {
			return n.Type == constvars.NotificationTypeContractSigned && n.UserID == "hosp-1" && n.ContractID == "contract-1"
		})).Return(nil)

		contract, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		assert.Equal(t, "contract-1", contract.ID)
		f.tx.AssertNumberOfCalls(t, "WithTransaction", 1)
		f.mailer.AssertExpectations(t)
	})

	t.Run("replayed transaction creates the contract without an id", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		tx := new(mocks.RetryingTransactor)
		tx.On("WithTransaction", mock.Anything).Return(nil)
		f.usecase.Transactor = tx
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)
		f.proposals.On("Respond", mock.Anything, "prop-1", "doc-1", constvars.ProposalStatusAccepted, fixedNow).Return(true, nil)

		var createdWithIDs []string
		record := func(args mock.Arguments) {
			createdWithIDs = append(createdWithIDs, args.Get(1).(*models.Contract).ID)
		}
		f.contracts.On("Create", mock.Anything, mock.Anything).Run(record).Return("65f000000000000000000001", nil).Once()
		f.contracts.On("Create", mock.Anything, mock.Anything).Run(record).Return("65f000000000000000000002", nil).Once()
		f.mailer.On("PublishNotification", mock.Anything, mock.Anything).Return(nil)

		contract, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"", ""}, createdWithIDs)
		assert.Equal(t, "65f000000000000000000002", contract.ID)
		f.mailer.AssertNumberOfCalls(t, "PublishNotification", 1)
	})

	t.Run("losing the race leaves no contract", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)
		f.proposals.On("Respond", mock.Anything, "prop-1", "doc-1", constvars.ProposalStatusAccepted, fixedNow).Return(false, nil)

		_, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.mailer.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
	})

	t.Run("already rejected proposal cannot be accepted", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		rejected := pendingProposal()
		rejected.Status = constvars.ProposalStatusRejected
		rejected.DoctorID = "doc-1"
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(rejected, nil)

		_, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.tx.AssertNotCalled(t, "WithTransaction", mock.Anything)
	})

	t.Run("notification failure does not undo the contract", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)
		f.proposals.On("Respond", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		f.contracts.On("Create", mock.Anything, mock.Anything).Return("contract-1", nil)
		f.mailer.On("PublishNotification", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		contract, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		assert.Equal(t, "contract-1", contract.ID)
	})

	t.Run("hospitals cannot accept", func(t *testing.T) {
		f := newProposalFixture(hospitalSession())

		_, err := f.usecase.AcceptProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})
}

func TestProposalUsecase_RejectProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("pending proposal is rejected", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(pendingProposal(), nil)
		f.proposals.On("Respond", mock.Anything, "prop-1", "doc-1", constvars.ProposalStatusRejected, fixedNow).Return(true, nil)

		proposal, err := f.usecase.RejectProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.NoError(t, err)
		assert.Equal(t, constvars.ProposalStatusRejected, proposal.Status)
		require.NotNil(t, proposal.RespondedAt)
		assert.Equal(t, fixedNow, *proposal.RespondedAt)
	})

	t.Run("accepted proposal stays accepted", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		accepted := pendingProposal()
		accepted.Status = constvars.ProposalStatusAccepted
		accepted.DoctorID = "doc-1"
		f.proposals.On("FindByID", mock.Anything, "prop-1").Return(accepted, nil)

		_, err := f.usecase.RejectProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "prop-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.proposals.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing proposal is not found", func(t *testing.T) {
		f := newProposalFixture(doctorSession("doc-1"))
		f.proposals.On("FindByID", mock.Anything, "nope").Return(nil, nil)

		_, err := f.usecase.RejectProposal(ctx, &requests.ProposalByID{SessionData: "session", ProposalID: "nope"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}
