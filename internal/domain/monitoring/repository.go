package monitoring

import "context"

type Repository interface {
	Create(ctx context.Context, m *Monitoring) error
	GetByProposalID(ctx context.Context, proposalID string) (*Monitoring, error)
	Save(ctx context.Context, m *Monitoring) error
}
