package uow

import (
	"context"

	"lppm-backend/internal/domain/kontrak"
	"lppm-backend/internal/domain/luaran"
	"lppm-backend/internal/domain/master"
	"lppm-backend/internal/domain/monitoring"
	"lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/review"
	"lppm-backend/internal/domain/sequence"
)

// Repos bundles every lifecycle repository bound to one transaction.
type Repos struct {
	Proposals   proposal.Repository
	Members     proposal.MemberRepository
	Assignments review.AssignmentRepository
	Reviews     review.Repository
	Kontrak     kontrak.Repository
	Pencairan   pencairan.Repository
	Monitoring  monitoring.Repository
	Luaran      luaran.Repository
	Sequences   sequence.Repository

	// master-data lookups that lifecycle guards re-check under the lock
	Periodes  master.PeriodeRepository
	Dosen     master.DosenRepository
	Reviewers master.ReviewerRepository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one transaction; any error rolls everything back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinProposalTx locks the proposal row up-front, then passes it in.
	WithinProposalTx(ctx context.Context, proposalID string, fn func(r Repos, p *proposal.Proposal) error) error
}
