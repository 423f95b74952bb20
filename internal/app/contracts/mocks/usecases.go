package mocks

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"plantao-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct{ mock.Mock }

func (m *AuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.RegisterUser)
	return result, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.LoginUser)
	return result, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, sessionData string) error {
	return m.Called(ctx, sessionData).Error(0)
}

func (m *AuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *AuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *AuthUsecase) Me(ctx context.Context, sessionData string) (*responses.User, error) {
	args := m.Called(ctx, sessionData)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

type AvailabilityUsecase struct{ mock.Mock }

func (m *AvailabilityUsecase) SubmitAvailability(ctx context.Context, request *requests.SubmitAvailability) (*responses.SubmitAvailability, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.SubmitAvailability)
	return result, args.Error(1)
}

func (m *AvailabilityUsecase) ListSlots(ctx context.Context, sessionData string) ([]models.TimeSlot, error) {
	args := m.Called(ctx, sessionData)
	result, _ := args.Get(0).([]models.TimeSlot)
	return result, args.Error(1)
}

func (m *AvailabilityUsecase) UpdateSlot(ctx context.Context, request *requests.UpdateSlot) (*models.TimeSlot, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.TimeSlot)
	return result, args.Error(1)
}

func (m *AvailabilityUsecase) DeleteSlot(ctx context.Context, request *requests.SlotByID) error {
	return m.Called(ctx, request).Error(0)
}

type ProposalUsecase struct{ mock.Mock }

func (m *ProposalUsecase) CreateProposal(ctx context.Context, request *requests.CreateProposal) (*models.Proposal, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Proposal)
	return result, args.Error(1)
}

func (m *ProposalUsecase) ListProposals(ctx context.Context, request *requests.ListProposals) ([]models.Proposal, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]models.Proposal)
	return result, args.Error(1)
}

func (m *ProposalUsecase) ListMatchingProposals(ctx context.Context, request *requests.ListMatchingProposals) ([]models.Proposal, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]models.Proposal)
	return result, args.Error(1)
}

func (m *ProposalUsecase) GetProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Proposal)
	return result, args.Error(1)
}

func (m *ProposalUsecase) AcceptProposal(ctx context.Context, request *requests.ProposalByID) (*models.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Contract)
	return result, args.Error(1)
}

func (m *ProposalUsecase) RejectProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Proposal)
	return result, args.Error(1)
}

type ShiftContractUsecase struct{ mock.Mock }

func (m *ShiftContractUsecase) ListContracts(ctx context.Context, request *requests.ListContracts) ([]responses.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.Contract)
	return result, args.Error(1)
}

func (m *ShiftContractUsecase) GetContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Contract)
	return result, args.Error(1)
}

func (m *ShiftContractUsecase) CheckIn(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Contract)
	return result, args.Error(1)
}

func (m *ShiftContractUsecase) CheckOut(ctx context.Context, request *requests.AttendanceVerification) (*responses.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Contract)
	return result, args.Error(1)
}

func (m *ShiftContractUsecase) CancelContract(ctx context.Context, request *requests.ContractByID) (*responses.Contract, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Contract)
	return result, args.Error(1)
}

type VerificationService struct{ mock.Mock }

func (m *VerificationService) Verify(ctx context.Context, doctorID string, contract *models.Contract, frame string, location *requests.DeviceLocation) (*responses.Verification, error) {
	args := m.Called(ctx, doctorID, contract, frame, location)
	result, _ := args.Get(0).(*responses.Verification)
	return result, args.Error(1)
}

func (m *VerificationService) EnrollFace(ctx context.Context, request *requests.EnrollFace) error {
	return m.Called(ctx, request).Error(0)
}

type ProfileUsecase struct{ mock.Mock }

func (m *ProfileUsecase) GetProfile(ctx context.Context, sessionData string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, sessionData)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

func (m *ProfileUsecase) UpdatePersonal(ctx context.Context, request *requests.UpdatePersonalInfo) (*models.DoctorProfile, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

func (m *ProfileUsecase) UpdateProfessional(ctx context.Context, request *requests.UpdateProfessionalInfo) (*models.DoctorProfile, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

func (m *ProfileUsecase) UpdateFinancial(ctx context.Context, request *requests.UpdateFinancialInfo) (*models.DoctorProfile, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

func (m *ProfileUsecase) UploadProfilePhoto(ctx context.Context, request *requests.UploadFile) (*models.DoctorProfile, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

func (m *ProfileUsecase) UploadDocument(ctx context.Context, request *requests.UploadFile) (*models.DocumentRef, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.DocumentRef)
	return result, args.Error(1)
}

func (m *ProfileUsecase) FinalizeDocuments(ctx context.Context, sessionData string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, sessionData)
	result, _ := args.Get(0).(*models.DoctorProfile)
	return result, args.Error(1)
}

type DashboardUsecase struct{ mock.Mock }

func (m *DashboardUsecase) GetSummary(ctx context.Context, sessionData string) (*responses.DashboardSummary, error) {
	args := m.Called(ctx, sessionData)
	result, _ := args.Get(0).(*responses.DashboardSummary)
	return result, args.Error(1)
}
