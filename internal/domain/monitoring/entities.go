package monitoring

import "time"

// Verifikasi is the tri-state of one report verification: empty (unset),
// APPROVED, or REJECTED. Re-uploading a report clears it back to unset.
type Verifikasi string

const (
	VerifikasiApproved Verifikasi = "APPROVED"
	VerifikasiRejected Verifikasi = "REJECTED"
)

// Monitoring holds one progress record per proposal: the laporan kemajuan
// (progress report) and laporan akhir (final report) with independent
// verification tracks.
type Monitoring struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string `gorm:"size:32;uniqueIndex:ux_monitoring_proposal" json:"proposal_id"`

	LaporanKemajuan    string     `gorm:"type:text" json:"laporan_kemajuan"`
	FileKemajuan       string     `gorm:"type:text" json:"file_kemajuan"`
	PersentaseKemajuan int        `json:"persentase_kemajuan"`
	VerifikasiKemajuanStatus Verifikasi `gorm:"type:varchar(16)" json:"verifikasi_kemajuan_status"`
	VerifikasiKemajuanAt     *time.Time `json:"verifikasi_kemajuan_at"`
	CatatanKemajuan          string     `gorm:"type:text" json:"catatan_kemajuan"`

	LaporanAkhir         string     `gorm:"type:text" json:"laporan_akhir"`
	FileAkhir            string     `gorm:"type:text" json:"file_akhir"`
	VerifikasiAkhirStatus Verifikasi `gorm:"type:varchar(16)" json:"verifikasi_akhir_status"`
	VerifikasiAkhirAt     *time.Time `json:"verifikasi_akhir_at"`
	CatatanAkhir          string     `gorm:"type:text" json:"catatan_akhir"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Monitoring) TableName() string { return "monitoring" }
