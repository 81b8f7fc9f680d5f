package proposal

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusDiajukan Status = "DIAJUKAN"
	StatusDireview Status = "DIREVIEW"
	StatusRevisi   Status = "REVISI"
	StatusDitolak  Status = "DITOLAK"
	StatusDiterima Status = "DITERIMA"
	StatusBerjalan Status = "BERJALAN"
	StatusSelesai  Status = "SELESAI"
)

// MaxRevisi is the hard cap on revision rounds per proposal.
const MaxRevisi = 2

// MaxMembers counts the ketua, so a team is the ketua plus at most 3 others.
const MaxMembers = 4

// StatusAdministrasi is the outcome of the administrative completeness check.
type StatusAdministrasi string

const (
	AdministrasiLolos      StatusAdministrasi = "LOLOS"
	AdministrasiTidakLolos StatusAdministrasi = "TIDAK_LOLOS"
)

// Checklist holds the 14 completeness components from the buku panduan.
type Checklist struct {
	CheckJudul             bool `json:"check_judul"`
	CheckLatarBelakang     bool `json:"check_latar_belakang"`
	CheckRumusanMasalah    bool `json:"check_rumusan_masalah"`
	CheckTujuan            bool `json:"check_tujuan"`
	CheckManfaat           bool `json:"check_manfaat"`
	CheckKajianTerdahulu   bool `json:"check_kajian_terdahulu"`
	CheckTinjauanPustaka   bool `json:"check_tinjauan_pustaka"`
	CheckKonsepTeori       bool `json:"check_konsep_teori"`
	CheckMetodologi        bool `json:"check_metodologi"`
	CheckRencanaPembahasan bool `json:"check_rencana_pembahasan"`
	CheckWaktuPelaksanaan  bool `json:"check_waktu_pelaksanaan"`
	CheckRencanaPublikasi  bool `json:"check_rencana_publikasi"`
	CheckDaftarPustaka     bool `json:"check_daftar_pustaka"`
	CheckLampiran          bool `json:"check_lampiran"`
}

type Proposal struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	Judul     string `gorm:"size:500" json:"judul"`
	Abstrak   string `gorm:"size:500" json:"abstrak"`
	PeriodeID string `gorm:"size:32;index" json:"periode_id"`
	SkemaID   string `gorm:"size:32;index" json:"skema_id"`
	// KetuaID references the dosen leading the team; CreatorID the user account.
	KetuaID   string `gorm:"size:32;index" json:"ketua_id"`
	CreatorID string `gorm:"size:32;index" json:"creator_id"`

	Status   Status `gorm:"type:varchar(16);default:'DRAFT'" json:"status"`
	FilePath string `gorm:"type:text" json:"file_path"`

	DanaDiajukan  float64 `gorm:"type:decimal(18,2)" json:"dana_diajukan"`
	DanaDisetujui float64 `gorm:"type:decimal(18,2)" json:"dana_disetujui"`
	NilaiTotal    float64 `gorm:"type:decimal(6,2)" json:"nilai_total"`

	Catatan       string `gorm:"type:text" json:"catatan"`
	CatatanRevisi string `gorm:"type:text" json:"catatan_revisi"`
	RevisiCount   int    `gorm:"default:0" json:"revisi_count"`

	// Administrative check results.
	StatusAdministrasi  StatusAdministrasi `gorm:"type:varchar(16)" json:"status_administrasi"`
	CatatanAdministrasi string             `gorm:"type:text" json:"catatan_administrasi"`
	CheckedAdminBy      string             `gorm:"size:32" json:"checked_admin_by"`
	CheckedAdminAt      *time.Time         `json:"checked_admin_at"`
	Checklist           `gorm:"embedded"`

	SubmittedAt *time.Time     `json:"submitted_at"`
	ApprovedAt  *time.Time     `json:"approved_at"`
	RejectedAt  *time.Time     `json:"rejected_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Proposal) TableName() string { return "proposal" }

// MemberType discriminates team members instead of nullable FK pairs.
type MemberType string

const (
	MemberDosen     MemberType = "DOSEN"
	MemberMahasiswa MemberType = "MAHASISWA"
)

type Member struct {
	ID         string     `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string     `gorm:"size:32;index;uniqueIndex:ux_member_proposal_person" json:"proposal_id"`
	Tipe       MemberType `gorm:"type:varchar(16)" json:"tipe"`
	// PersonID is a dosen id or mahasiswa id depending on Tipe.
	PersonID string    `gorm:"size:32;uniqueIndex:ux_member_proposal_person" json:"person_id"`
	IsKetua  bool      `json:"is_ketua"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Member) TableName() string { return "proposal_member" }
