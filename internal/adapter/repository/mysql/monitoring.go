package mysql

import (
	"context"

	luaranDomain "lppm-backend/internal/domain/luaran"
	monitoringDomain "lppm-backend/internal/domain/monitoring"

	"gorm.io/gorm"
)

type MonitoringRepository struct{ db *gorm.DB }

func NewMonitoringRepository(db *gorm.DB) *MonitoringRepository {
	return &MonitoringRepository{db: db}
}

func (r *MonitoringRepository) Create(ctx context.Context, m *monitoringDomain.Monitoring) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MonitoringRepository) GetByProposalID(ctx context.Context, proposalID string) (*monitoringDomain.Monitoring, error) {
	var out monitoringDomain.Monitoring
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *MonitoringRepository) Save(ctx context.Context, m *monitoringDomain.Monitoring) error {
	return r.db.WithContext(ctx).Save(m).Error
}

type LuaranRepository struct{ db *gorm.DB }

func NewLuaranRepository(db *gorm.DB) *LuaranRepository { return &LuaranRepository{db: db} }

func (r *LuaranRepository) Create(ctx context.Context, l *luaranDomain.Luaran) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LuaranRepository) GetByID(ctx context.Context, id string) (*luaranDomain.Luaran, error) {
	var out luaranDomain.Luaran
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LuaranRepository) ListByProposalID(ctx context.Context, proposalID string) ([]luaranDomain.Luaran, error) {
	var out []luaranDomain.Luaran
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).Order("created_at ASC").Find(&out)
	return out, res.Error
}

func (r *LuaranRepository) CountVerified(ctx context.Context, proposalID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&luaranDomain.Luaran{}).
		Where("proposal_id = ? AND status_verifikasi = ?", proposalID, luaranDomain.StatusDiverifikasi).
		Count(&n)
	return n, res.Error
}

func (r *LuaranRepository) Save(ctx context.Context, l *luaranDomain.Luaran) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LuaranRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&luaranDomain.Luaran{}, "id = ?", id).Error
}
