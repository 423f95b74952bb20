package contracts

import (
	"context"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/dto/requests"
	"time"
)

type ProposalUsecase interface {
	CreateProposal(ctx context.Context, request *requests.CreateProposal) (*models.Proposal, error)
	ListProposals(ctx context.Context, request *requests.ListProposals) ([]models.Proposal, error)
	ListMatchingProposals(ctx context.Context, request *requests.ListMatchingProposals) ([]models.Proposal, error)
	GetProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error)
	AcceptProposal(ctx context.Context, request *requests.ProposalByID) (*models.Contract, error)
	RejectProposal(ctx context.Context, request *requests.ProposalByID) (*models.Proposal, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.Proposal) (string, error)
	FindByID(ctx context.Context, proposalID string) (*models.Proposal, error)
	// FindByDoctorID lists proposals addressed to doctorID, optionally by status.
	FindByDoctorID(ctx context.Context, doctorID, status string) ([]models.Proposal, error)
	// FindByHospitalID lists proposals a hospital created, optionally by status.
	FindByHospitalID(ctx context.Context, hospitalID, status string) ([]models.Proposal, error)
	// FindPendingForDoctor lists pending proposals in any of specialties that are
	// unassigned or assigned to doctorID, newest first.
	FindPendingForDoctor(ctx context.Context, doctorID string, specialties []string) ([]models.Proposal, error)
	// Respond moves a pending proposal to status. It reports false when the
	// proposal is no longer pending or is assigned to someone else.
	Respond(ctx context.Context, proposalID, doctorID, status string, respondedAt time.Time) (bool, error)
}
