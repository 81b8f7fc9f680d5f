package review

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id string) (*Assignment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]Assignment, error)
	Save(ctx context.Context, a *Assignment) error
	// ResetByProposalID puts every assignment of the proposal back to PENDING.
	ResetByProposalID(ctx context.Context, proposalID string) error
}

type Repository interface {
	Create(ctx context.Context, r *Review) error
	GetByAssignmentID(ctx context.Context, assignmentID string) (*Review, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]Review, error)
	DeleteByProposalID(ctx context.Context, proposalID string) error
}
