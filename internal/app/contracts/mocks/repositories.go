package mocks

import (
	"context"
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	return m.Called(ctx, userID, hashedPassword).Error(0)
}

type TimeSlotRepository struct{ mock.Mock }

func (m *TimeSlotRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.TimeSlot, error) {
	args := m.Called(ctx, doctorID)
	slots, _ := args.Get(0).([]models.TimeSlot)
	return slots, args.Error(1)
}

func (m *TimeSlotRepository) FindByDoctorIDAndDates(ctx context.Context, doctorID string, dates []string) ([]models.TimeSlot, error) {
	args := m.Called(ctx, doctorID, dates)
	slots, _ := args.Get(0).([]models.TimeSlot)
	return slots, args.Error(1)
}

func (m *TimeSlotRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	args := m.Called(ctx, slotID)
	slot, _ := args.Get(0).(*models.TimeSlot)
	return slot, args.Error(1)
}

func (m *TimeSlotRepository) CountByDoctorID(ctx context.Context, doctorID string) (int64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TimeSlotRepository) InsertMany(ctx context.Context, slots []models.TimeSlot) ([]string, error) {
	args := m.Called(ctx, slots)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *TimeSlotRepository) Update(ctx context.Context, slot *models.TimeSlot) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *TimeSlotRepository) DeleteByID(ctx context.Context, doctorID, slotID string) (bool, error) {
	args := m.Called(ctx, doctorID, slotID)
	return args.Bool(0), args.Error(1)
}

type ProposalRepository struct{ mock.Mock }

func (m *ProposalRepository) Create(ctx context.Context, proposal *models.Proposal) (string, error) {
	args := m.Called(ctx, proposal)
	return args.String(0), args.Error(1)
}

func (m *ProposalRepository) FindByID(ctx context.Context, proposalID string) (*models.Proposal, error) {
	args := m.Called(ctx, proposalID)
	proposal, _ := args.Get(0).(*models.Proposal)
	return proposal, args.Error(1)
}

func (m *ProposalRepository) FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Proposal, error) {
	args := m.Called(ctx, doctorID, status)
	proposals, _ := args.Get(0).([]models.Proposal)
	return proposals, args.Error(1)
}

func (m *ProposalRepository) FindByHospitalID(ctx context.Context, hospitalID, status string) ([]models.Proposal, error) {
	args := m.Called(ctx, hospitalID, status)
	proposals, _ := args.Get(0).([]models.Proposal)
	return proposals, args.Error(1)
}

func (m *ProposalRepository) FindPendingForDoctor(ctx context.Context, doctorID string, specialties []string) ([]models.Proposal, error) {
	args := m.Called(ctx, doctorID, specialties)
	proposals, _ := args.Get(0).([]models.Proposal)
	return proposals, args.Error(1)
}

func (m *ProposalRepository) Respond(ctx context.Context, proposalID, doctorID, status string, respondedAt time.Time) (bool, error) {
	args := m.Called(ctx, proposalID, doctorID, status, respondedAt)
	return args.Bool(0), args.Error(1)
}

type ContractRepository struct{ mock.Mock }

func (m *ContractRepository) Create(ctx context.Context, contract *models.Contract) (string, error) {
	args := m.Called(ctx, contract)
	return args.String(0), args.Error(1)
}

func (m *ContractRepository) FindByID(ctx context.Context, contractID string) (*models.Contract, error) {
	args := m.Called(ctx, contractID)
	contract, _ := args.Get(0).(*models.Contract)
	return contract, args.Error(1)
}

func (m *ContractRepository) FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Contract, error) {
	args := m.Called(ctx, doctorID, status)
	list, _ := args.Get(0).([]models.Contract)
	return list, args.Error(1)
}

func (m *ContractRepository) ApplyTransition(ctx context.Context, contractID, doctorID string, transition contracts.ContractTransition) (bool, error) {
	args := m.Called(ctx, contractID, doctorID, transition)
	return args.Bool(0), args.Error(1)
}

func (m *ContractRepository) FindDueForReminder(ctx context.Context, dates []string) ([]models.Contract, error) {
	args := m.Called(ctx, dates)
	list, _ := args.Get(0).([]models.Contract)
	return list, args.Error(1)
}

func (m *ContractRepository) MarkReminded(ctx context.Context, contractID string, remindedAt time.Time) error {
	return m.Called(ctx, contractID, remindedAt).Error(0)
}

type DoctorProfileRepository struct{ mock.Mock }

func (m *DoctorProfileRepository) Create(ctx context.Context, profile *models.DoctorProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *DoctorProfileRepository) FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, doctorID)
	profile, _ := args.Get(0).(*models.DoctorProfile)
	return profile, args.Error(1)
}

func (m *DoctorProfileRepository) UpdateFields(ctx context.Context, doctorID string, fields map[string]interface{}) error {
	return m.Called(ctx, doctorID, fields).Error(0)
}

type FacialDataRepository struct{ mock.Mock }

func (m *FacialDataRepository) AppendObject(ctx context.Context, doctorID, objectName string, updatedAt time.Time) error {
	return m.Called(ctx, doctorID, objectName, updatedAt).Error(0)
}
