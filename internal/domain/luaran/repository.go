package luaran

import "context"

type Repository interface {
	Create(ctx context.Context, l *Luaran) error
	GetByID(ctx context.Context, id string) (*Luaran, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]Luaran, error)
	CountVerified(ctx context.Context, proposalID string) (int64, error)
	Save(ctx context.Context, l *Luaran) error
	Delete(ctx context.Context, id string) error
}
