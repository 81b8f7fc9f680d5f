package luaran

import "time"

type StatusVerifikasi string

const (
	StatusPending      StatusVerifikasi = "PENDING"
	StatusDiverifikasi StatusVerifikasi = "DIVERIFIKASI"
	StatusDitolak      StatusVerifikasi = "DITOLAK"
)

// Luaran is a research output (publication, prototype, HKI, ...) attached to
// a running proposal. Any single DIVERIFIKASI luaran satisfies the TERMIN_3
// precondition.
type Luaran struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string `gorm:"size:32;index" json:"proposal_id"`

	Jenis     string `gorm:"size:64" json:"jenis"`
	Judul     string `gorm:"size:255" json:"judul"`
	Deskripsi string `gorm:"type:text" json:"deskripsi"`
	FilePath  string `gorm:"type:text" json:"file_path"`

	StatusVerifikasi   StatusVerifikasi `gorm:"type:varchar(16);default:'PENDING'" json:"status_verifikasi"`
	CatatanVerifikasi  string           `gorm:"type:text" json:"catatan_verifikasi"`
	VerifiedBy         string           `gorm:"size:32" json:"verified_by"`
	VerifiedAt         *time.Time       `json:"verified_at"`

	CreatedBy string    `gorm:"size:32" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Luaran) TableName() string { return "luaran" }
