package mysql

import (
	"context"

	sequenceDomain "lppm-backend/internal/domain/sequence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceRepository struct{ db *gorm.DB }

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next is an increment-or-create upsert. The upsert and the re-read share one
// transaction, so the incremented row stays locked until commit and two
// concurrent callers can never observe the same value.
func (r *SequenceRepository) Next(ctx context.Context, key string, year int) (int, error) {
	var out int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq := sequenceDomain.Sequence{ID: key, Year: year, LastNumber: 1}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_number": gorm.Expr("last_number + 1")}),
		}).Create(&seq).Error; err != nil {
			return err
		}
		var cur sequenceDomain.Sequence
		if err := tx.Where("id = ?", key).First(&cur).Error; err != nil {
			return err
		}
		out = cur.LastNumber
		return nil
	})
	return out, err
}
