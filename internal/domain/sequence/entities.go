package sequence

import (
	"context"
	"fmt"
	"time"
)

// Sequence is a per-year named counter backing human-readable document
// numbers. The row is created on first use and incremented atomically.
type Sequence struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	Year       int       `json:"year"`
	LastNumber int       `json:"last_number"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Sequence) TableName() string { return "sequences" }

// Key composes the counter name from an entity kind and year,
// e.g. KONTRAK_2025.
func Key(kind string, year int) string { return fmt.Sprintf("%s_%d", kind, year) }

type Repository interface {
	// Next atomically increments (creating at 1 when absent) and returns the
	// counter value. Two concurrent callers never receive the same number.
	Next(ctx context.Context, key string, year int) (int, error)
}
