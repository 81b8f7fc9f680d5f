package proposal

import "context"

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByID(ctx context.Context, id string) (*Proposal, error)
	// GetByIDForUpdate locks the row for the current transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*Proposal, error)
	Save(ctx context.Context, p *Proposal) error
	ListByStatus(ctx context.Context, s Status) ([]Proposal, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id string) (*Member, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]Member, error)
	CountByProposalID(ctx context.Context, proposalID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
