package pencairan

import "context"

type Repository interface {
	// CreateIfAbsent inserts the tranche unless one already exists for the
	// same (proposal, termin) pair. Returns true when a row was inserted.
	// Backed by the unique index, not a read-then-write.
	CreateIfAbsent(ctx context.Context, p *Pencairan) (bool, error)
	GetByID(ctx context.Context, id string) (*Pencairan, error)
	GetByProposalTermin(ctx context.Context, proposalID string, t Termin) (*Pencairan, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]Pencairan, error)
	ListByTerminStatus(ctx context.Context, t Termin, s Status) ([]Pencairan, error)
	Save(ctx context.Context, p *Pencairan) error
	DeleteByProposalTermin(ctx context.Context, proposalID string, t Termin) error
}
