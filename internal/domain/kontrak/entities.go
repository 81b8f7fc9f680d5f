package kontrak

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft   Status = "DRAFT"
	StatusSigned  Status = "SIGNED"
	StatusSelesai Status = "SELESAI"
)

type Kontrak struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string `gorm:"size:32;uniqueIndex:ux_kontrak_proposal" json:"proposal_id"`

	NomorKontrak string `gorm:"size:64" json:"nomor_kontrak"`
	NomorSK      string `gorm:"size:64;column:nomor_sk" json:"nomor_sk"`

	DanaDisetujui float64 `gorm:"type:decimal(18,2)" json:"dana_disetujui"`
	Status        Status  `gorm:"type:varchar(16);default:'DRAFT'" json:"status"`

	FileKontrak string     `gorm:"type:text" json:"file_kontrak"`
	FileSK      string     `gorm:"type:text;column:file_sk" json:"file_sk"`
	UploadedBy  string     `gorm:"size:32" json:"uploaded_by"`
	UploadedAt  *time.Time `json:"uploaded_at"`

	CreatedBy string    `gorm:"size:32" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Kontrak) TableName() string { return "kontrak" }

// Counter names and document-number templates. The 3-digit suffix comes from
// the per-year sequence table.
const (
	CounterKontrak = "KONTRAK"
	CounterSK      = "SK"
)

func FormatNomorKontrak(year, n int) string {
	return fmt.Sprintf("KNT/LPPM/%d/%03d", year, n)
}

func FormatNomorSK(year, n int) string {
	return fmt.Sprintf("SK/LPPM/PENELITIAN/%d/%03d", year, n)
}
