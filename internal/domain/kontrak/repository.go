package kontrak

import "context"

type Repository interface {
	Create(ctx context.Context, k *Kontrak) error
	GetByID(ctx context.Context, id string) (*Kontrak, error)
	GetByProposalID(ctx context.Context, proposalID string) (*Kontrak, error)
	Save(ctx context.Context, k *Kontrak) error
}
