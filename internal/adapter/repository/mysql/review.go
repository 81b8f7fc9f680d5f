package mysql

import (
	"context"

	reviewDomain "lppm-backend/internal/domain/review"

	"gorm.io/gorm"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *reviewDomain.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*reviewDomain.Assignment, error) {
	var out reviewDomain.Assignment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *AssignmentRepository) ListByProposalID(ctx context.Context, proposalID string) ([]reviewDomain.Assignment, error) {
	var out []reviewDomain.Assignment
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).Order("created_at ASC").Find(&out)
	return out, res.Error
}

func (r *AssignmentRepository) Save(ctx context.Context, a *reviewDomain.Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AssignmentRepository) ResetByProposalID(ctx context.Context, proposalID string) error {
	return r.db.WithContext(ctx).Model(&reviewDomain.Assignment{}).
		Where("proposal_id = ?", proposalID).
		Update("status", reviewDomain.AssignmentPending).Error
}

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

func (r *ReviewRepository) Create(ctx context.Context, rv *reviewDomain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByAssignmentID(ctx context.Context, assignmentID string) (*reviewDomain.Review, error) {
	var out reviewDomain.Review
	res := r.db.WithContext(ctx).Where("assignment_id = ?", assignmentID).First(&out)
	return &out, res.Error
}

func (r *ReviewRepository) ListByProposalID(ctx context.Context, proposalID string) ([]reviewDomain.Review, error) {
	var out []reviewDomain.Review
	res := r.db.WithContext(ctx).
		Where("assignment_id IN (?)", r.db.Model(&reviewDomain.Assignment{}).
			Select("id").Where("proposal_id = ?", proposalID)).
		Find(&out)
	return out, res.Error
}

func (r *ReviewRepository) DeleteByProposalID(ctx context.Context, proposalID string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id IN (?)", r.db.Model(&reviewDomain.Assignment{}).
			Select("id").Where("proposal_id = ?", proposalID)).
		Delete(&reviewDomain.Review{}).Error
}
