package master

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDosen     Role = "DOSEN"
	RoleReviewer  Role = "REVIEWER"
	RoleMahasiswa Role = "MAHASISWA"
)

// Actor is the authenticated caller as seen by the usecases.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type User struct {
	ID           string         `gorm:"primaryKey;size:32" json:"id"`
	Username     string         `gorm:"size:64;uniqueIndex:ux_users_username" json:"username"`
	Email        string         `gorm:"size:128" json:"email"`
	PasswordHash string         `gorm:"size:128" json:"-"`
	Role         Role           `gorm:"type:varchar(16)" json:"role"`
	Status       string         `gorm:"type:varchar(16);default:'AKTIF'" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type Dosen struct {
	ID     string `gorm:"primaryKey;size:32" json:"id"`
	UserID string `gorm:"size:32;uniqueIndex:ux_dosen_user" json:"user_id"`
	NIDN   string `gorm:"size:20;column:nidn" json:"nidn"`
	Nama   string `gorm:"size:128" json:"nama"`
}

func (Dosen) TableName() string { return "dosen" }

type Mahasiswa struct {
	ID     string `gorm:"primaryKey;size:32" json:"id"`
	UserID string `gorm:"size:32;uniqueIndex:ux_mahasiswa_user" json:"user_id"`
	NIM    string `gorm:"size:20;column:nim" json:"nim"`
	Nama   string `gorm:"size:128" json:"nama"`
}

func (Mahasiswa) TableName() string { return "mahasiswa" }

// ReviewerTipe tags a reviewer as internal faculty or an external evaluator.
type ReviewerTipe string

const (
	ReviewerInternal ReviewerTipe = "INTERNAL"
	ReviewerEksternal ReviewerTipe = "EKSTERNAL"
)

type Reviewer struct {
	ID       string       `gorm:"primaryKey;size:32" json:"id"`
	UserID   string       `gorm:"size:32;uniqueIndex:ux_reviewer_user" json:"user_id"`
	Nama     string       `gorm:"size:128" json:"nama"`
	Tipe     ReviewerTipe `gorm:"type:varchar(16);default:'INTERNAL'" json:"tipe"`
	Keahlian string       `gorm:"size:128" json:"keahlian"`
}

func (Reviewer) TableName() string { return "reviewer" }

type Periode struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Nama         string    `gorm:"size:64" json:"nama"`
	Tahun        int       `json:"tahun"`
	TanggalBuka  time.Time `json:"tanggal_buka"`
	TanggalTutup time.Time `json:"tanggal_tutup"`
	Status       string    `gorm:"type:varchar(16);default:'AKTIF'" json:"status"`
}

func (Periode) TableName() string { return "periode" }

// IsOpen reports whether proposals may still be submitted into this periode.
func (p *Periode) IsOpen(now time.Time) bool {
	return p.Status == "AKTIF" && !now.Before(p.TanggalBuka) && !now.After(p.TanggalTutup)
}

type Skema struct {
	ID           string  `gorm:"primaryKey;size:32" json:"id"`
	Nama         string  `gorm:"size:128" json:"nama"`
	Tipe         string  `gorm:"type:varchar(32)" json:"tipe"`
	DanaMaksimal float64 `gorm:"type:decimal(18,2)" json:"dana_maksimal"`
}

func (Skema) TableName() string { return "skema" }
