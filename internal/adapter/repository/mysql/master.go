package mysql

import (
	"context"

	masterDomain "lppm-backend/internal/domain/master"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *masterDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*masterDomain.User, error) {
	var out masterDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*masterDomain.User, error) {
	var out masterDomain.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, res.Error
}

type DosenRepository struct{ db *gorm.DB }

func NewDosenRepository(db *gorm.DB) *DosenRepository { return &DosenRepository{db: db} }

func (r *DosenRepository) GetByID(ctx context.Context, id string) (*masterDomain.Dosen, error) {
	var out masterDomain.Dosen
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DosenRepository) GetByUserID(ctx context.Context, userID string) (*masterDomain.Dosen, error) {
	var out masterDomain.Dosen
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

type MahasiswaRepository struct{ db *gorm.DB }

func NewMahasiswaRepository(db *gorm.DB) *MahasiswaRepository {
	return &MahasiswaRepository{db: db}
}

func (r *MahasiswaRepository) GetByID(ctx context.Context, id string) (*masterDomain.Mahasiswa, error) {
	var out masterDomain.Mahasiswa
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

type ReviewerRepository struct{ db *gorm.DB }

func NewReviewerRepository(db *gorm.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id string) (*masterDomain.Reviewer, error) {
	var out masterDomain.Reviewer
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ReviewerRepository) GetByUserID(ctx context.Context, userID string) (*masterDomain.Reviewer, error) {
	var out masterDomain.Reviewer
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ReviewerRepository) GetByIDs(ctx context.Context, ids []string) ([]masterDomain.Reviewer, error) {
	var out []masterDomain.Reviewer
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}

type PeriodeRepository struct{ db *gorm.DB }

func NewPeriodeRepository(db *gorm.DB) *PeriodeRepository { return &PeriodeRepository{db: db} }

func (r *PeriodeRepository) GetByID(ctx context.Context, id string) (*masterDomain.Periode, error) {
	var out masterDomain.Periode
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}
