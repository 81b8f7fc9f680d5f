package mysql

import (
	"context"

	kontrakDomain "lppm-backend/internal/domain/kontrak"

	"gorm.io/gorm"
)

type KontrakRepository struct{ db *gorm.DB }

func NewKontrakRepository(db *gorm.DB) *KontrakRepository { return &KontrakRepository{db: db} }

func (r *KontrakRepository) Create(ctx context.Context, k *kontrakDomain.Kontrak) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *KontrakRepository) GetByID(ctx context.Context, id string) (*kontrakDomain.Kontrak, error) {
	var out kontrakDomain.Kontrak
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *KontrakRepository) GetByProposalID(ctx context.Context, proposalID string) (*kontrakDomain.Kontrak, error) {
	var out kontrakDomain.Kontrak
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *KontrakRepository) Save(ctx context.Context, k *kontrakDomain.Kontrak) error {
	return r.db.WithContext(ctx).Save(k).Error
}
