package pencairan

import "time"

// Termin identifies one of the three funding tranches.
type Termin string

const (
	Termin1 Termin = "TERMIN_1"
	Termin2 Termin = "TERMIN_2"
	Termin3 Termin = "TERMIN_3"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDicairkan Status = "DICAIRKAN"
	StatusDitolak   Status = "DITOLAK"
)

// Persentase returns the fixed share of approved funding per tranche.
func (t Termin) Persentase() int {
	if t == Termin1 {
		return 50
	}
	return 25
}

// Nominal computes the tranche amount from the approved grant.
func (t Termin) Nominal(danaDisetujui float64) float64 {
	return danaDisetujui * float64(t.Persentase()) / 100
}

// Pencairan is one disbursement tranche. The (proposal_id, termin) pair is
// unique at the database level; creation must go through an insert-if-absent
// so concurrent triggers cannot produce duplicates.
type Pencairan struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string `gorm:"size:32;index;uniqueIndex:ux_pencairan_proposal_termin" json:"proposal_id"`
	Termin     Termin `gorm:"type:varchar(16);uniqueIndex:ux_pencairan_proposal_termin" json:"termin"`

	Nominal    float64 `gorm:"type:decimal(18,2)" json:"nominal"`
	Persentase int     `json:"persentase"`
	Status     Status  `gorm:"type:varchar(16);default:'PENDING'" json:"status"`

	Keterangan       string     `gorm:"type:text" json:"keterangan"`
	BuktiPath        string     `gorm:"type:text" json:"bukti_path"`
	TanggalPencairan *time.Time `json:"tanggal_pencairan"`

	CreatedBy string    `gorm:"size:32" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Pencairan) TableName() string { return "pencairan_dana" }
