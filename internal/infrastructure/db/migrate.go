package db

import (
	"gorm.io/gorm"

	"lppm-backend/internal/domain/kontrak"
	"lppm-backend/internal/domain/luaran"
	"lppm-backend/internal/domain/master"
	"lppm-backend/internal/domain/monitoring"
	"lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/review"
	"lppm-backend/internal/domain/sequence"
)

// AutoMigrate creates or updates every table the service owns. Order matters
// only for readability; gorm resolves each model independently.
func AutoMigrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&master.User{},
		&master.Dosen{},
		&master.Mahasiswa{},
		&master.Reviewer{},
		&master.Periode{},
		&master.Skema{},
		&proposal.Proposal{},
		&proposal.Member{},
		&review.Assignment{},
		&review.Review{},
		&kontrak.Kontrak{},
		&pencairan.Pencairan{},
		&monitoring.Monitoring{},
		&luaran.Luaran{},
		&sequence.Sequence{},
	)
}
