package mysql

import (
	"context"

	proposalDomain "lppm-backend/internal/domain/proposal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepository struct{ db *gorm.DB }

func NewProposalRepository(db *gorm.DB) *ProposalRepository { return &ProposalRepository{db: db} }

func (r *ProposalRepository) Create(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalRepository) Save(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate locks the row until the surrounding transaction commits.
// SQLite has no FOR UPDATE; its single-writer model already serializes there.
func (r *ProposalRepository) GetByIDForUpdate(ctx context.Context, id string) (*proposalDomain.Proposal, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out proposalDomain.Proposal
	res := q.Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) ListByStatus(ctx context.Context, s proposalDomain.Status) ([]proposalDomain.Proposal, error) {
	var out []proposalDomain.Proposal
	res := r.db.WithContext(ctx).Where("status = ?", s).Order("created_at DESC").Find(&out)
	return out, res.Error
}

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *proposalDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*proposalDomain.Member, error) {
	var out proposalDomain.Member
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) ListByProposalID(ctx context.Context, proposalID string) ([]proposalDomain.Member, error) {
	var out []proposalDomain.Member
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).Order("created_at ASC").Find(&out)
	return out, res.Error
}

func (r *MemberRepository) CountByProposalID(ctx context.Context, proposalID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&proposalDomain.Member{}).
		Where("proposal_id = ?", proposalID).Count(&n)
	return n, res.Error
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&proposalDomain.Member{}, "id = ?", id).Error
}
