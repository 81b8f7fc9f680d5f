package mysql

import (
	"context"

	pencairanDomain "lppm-backend/internal/domain/pencairan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PencairanRepository struct{ db *gorm.DB }

func NewPencairanRepository(db *gorm.DB) *PencairanRepository {
	return &PencairanRepository{db: db}
}

// CreateIfAbsent relies on ux_pencairan_proposal_termin: the insert is a
// single atomic statement, so two concurrent triggers for the same tranche
// leave exactly one row.
func (r *PencairanRepository) CreateIfAbsent(ctx context.Context, p *pencairanDomain.Pencairan) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "proposal_id"}, {Name: "termin"}},
		DoNothing: true,
	}).Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PencairanRepository) GetByID(ctx context.Context, id string) (*pencairanDomain.Pencairan, error) {
	var out pencairanDomain.Pencairan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PencairanRepository) GetByProposalTermin(ctx context.Context, proposalID string, t pencairanDomain.Termin) (*pencairanDomain.Pencairan, error) {
	var out pencairanDomain.Pencairan
	res := r.db.WithContext(ctx).
		Where("proposal_id = ? AND termin = ?", proposalID, t).First(&out)
	return &out, res.Error
}

func (r *PencairanRepository) ListByProposalID(ctx context.Context, proposalID string) ([]pencairanDomain.Pencairan, error) {
	var out []pencairanDomain.Pencairan
	res := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).Order("termin ASC").Find(&out)
	return out, res.Error
}

func (r *PencairanRepository) ListByTerminStatus(ctx context.Context, t pencairanDomain.Termin, s pencairanDomain.Status) ([]pencairanDomain.Pencairan, error) {
	var out []pencairanDomain.Pencairan
	res := r.db.WithContext(ctx).
		Where("termin = ? AND status = ?", t, s).Find(&out)
	return out, res.Error
}

func (r *PencairanRepository) Save(ctx context.Context, p *pencairanDomain.Pencairan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PencairanRepository) DeleteByProposalTermin(ctx context.Context, proposalID string, t pencairanDomain.Termin) error {
	return r.db.WithContext(ctx).
		Where("proposal_id = ? AND termin = ?", proposalID, t).
		Delete(&pencairanDomain.Pencairan{}).Error
}
