package mysql

import (
	"context"

	"lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Proposals:   &ProposalRepository{db: tx},
		Members:     &MemberRepository{db: tx},
		Assignments: &AssignmentRepository{db: tx},
		Reviews:     &ReviewRepository{db: tx},
		Kontrak:     &KontrakRepository{db: tx},
		Pencairan:   &PencairanRepository{db: tx},
		Monitoring:  &MonitoringRepository{db: tx},
		Luaran:      &LuaranRepository{db: tx},
		Sequences:   &SequenceRepository{db: tx},
		Periodes:    &PeriodeRepository{db: tx},
		Dosen:       &DosenRepository{db: tx},
		Reviewers:   &ReviewerRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinProposalTx(ctx context.Context, proposalID string, fn func(r uow.Repos, p *proposal.Proposal) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the proposal row up-front so racing lifecycle actions serialize
		p, err := r.Proposals.GetByIDForUpdate(ctx, proposalID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
