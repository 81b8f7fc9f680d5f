package fixture

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lppm-backend/internal/domain/kontrak"
	"lppm-backend/internal/domain/master"
	"lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/infrastructure/db"
	"lppm-backend/pkg/id"
)

// NewDB opens an in-memory sqlite database with the full schema. The pool is
// pinned to one connection because each sqlite :memory: connection is its own
// database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(g); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return g
}

// Seed is the minimal cast of characters for lifecycle tests.
type Seed struct {
	Admin     master.Actor
	Ketua     master.Actor
	Dosen     master.Dosen
	Mahasiswa master.Mahasiswa

	Reviewer1      master.Reviewer
	Reviewer2      master.Reviewer
	ReviewerActor1 master.Actor
	ReviewerActor2 master.Actor

	Periode master.Periode
}

// SeedBase inserts an admin, a dosen (the future ketua), a mahasiswa, two
// reviewers and an open periode.
func SeedBase(t *testing.T, g *gorm.DB) *Seed {
	t.Helper()
	now := time.Now().UTC()

	s := &Seed{}

	adminID := id.NewID32()
	mustCreate(t, g, &master.User{ID: adminID, Username: "admin", Role: master.RoleAdmin, Status: "AKTIF"})
	s.Admin = master.Actor{UserID: adminID, Role: master.RoleAdmin}

	dosenUserID := id.NewID32()
	mustCreate(t, g, &master.User{ID: dosenUserID, Username: "dosen1", Role: master.RoleDosen, Status: "AKTIF"})
	s.Dosen = master.Dosen{ID: id.NewID32(), UserID: dosenUserID, NIDN: "0011223344", Nama: "Dosen Satu"}
	mustCreate(t, g, &s.Dosen)
	s.Ketua = master.Actor{UserID: dosenUserID, Role: master.RoleDosen}

	mhsUserID := id.NewID32()
	mustCreate(t, g, &master.User{ID: mhsUserID, Username: "mhs1", Role: master.RoleMahasiswa, Status: "AKTIF"})
	s.Mahasiswa = master.Mahasiswa{ID: id.NewID32(), UserID: mhsUserID, NIM: "2211001", Nama: "Mahasiswa Satu"}
	mustCreate(t, g, &s.Mahasiswa)

	for i, rv := range []*master.Reviewer{&s.Reviewer1, &s.Reviewer2} {
		userID := id.NewID32()
		mustCreate(t, g, &master.User{ID: userID, Username: "reviewer" + string(rune('1'+i)), Role: master.RoleReviewer, Status: "AKTIF"})
		*rv = master.Reviewer{ID: id.NewID32(), UserID: userID, Nama: "Reviewer", Tipe: master.ReviewerInternal}
		mustCreate(t, g, rv)
	}
	s.ReviewerActor1 = master.Actor{UserID: s.Reviewer1.UserID, Role: master.RoleReviewer}
	s.ReviewerActor2 = master.Actor{UserID: s.Reviewer2.UserID, Role: master.RoleReviewer}

	s.Periode = master.Periode{
		ID:           id.NewID32(),
		Nama:         "Periode Genap",
		Tahun:        now.Year(),
		TanggalBuka:  now.AddDate(0, -1, 0),
		TanggalTutup: now.AddDate(0, 1, 0),
		Status:       "AKTIF",
	}
	mustCreate(t, g, &s.Periode)

	return s
}

// NewDraftProposal inserts a submit-ready DRAFT proposal led by the seeded
// dosen, with the ketua membership row.
func NewDraftProposal(t *testing.T, g *gorm.DB, s *Seed, dana float64) *proposal.Proposal {
	t.Helper()
	p := &proposal.Proposal{
		ID:           id.NewID32(),
		Judul:        "Sistem Irigasi Cerdas",
		Abstrak:      "Pemantauan kelembapan tanah berbasis sensor.",
		PeriodeID:    s.Periode.ID,
		KetuaID:      s.Dosen.ID,
		CreatorID:    s.Ketua.UserID,
		Status:       proposal.StatusDraft,
		FilePath:     "proposal/awal.pdf",
		DanaDiajukan: dana,
	}
	mustCreate(t, g, p)
	mustCreate(t, g, &proposal.Member{
		ID:         id.NewID32(),
		ProposalID: p.ID,
		Tipe:       proposal.MemberDosen,
		PersonID:   s.Dosen.ID,
		IsKetua:    true,
	})
	return p
}

// NewAcceptedProposal inserts a DITERIMA proposal with its DRAFT contract,
// as Approve leaves them.
func NewAcceptedProposal(t *testing.T, g *gorm.DB, s *Seed, dana float64) (*proposal.Proposal, *kontrak.Kontrak) {
	t.Helper()
	p := NewDraftProposal(t, g, s, dana)
	now := time.Now().UTC()
	p.Status = proposal.StatusDiterima
	p.DanaDisetujui = dana
	p.NilaiTotal = 85
	p.SubmittedAt = &now
	p.ApprovedAt = &now
	if err := g.Save(p).Error; err != nil {
		t.Fatalf("accept proposal: %v", err)
	}
	k := &kontrak.Kontrak{
		ID:            id.NewID32(),
		ProposalID:    p.ID,
		NomorKontrak:  kontrak.FormatNomorKontrak(now.Year(), 1),
		NomorSK:       kontrak.FormatNomorSK(now.Year(), 1),
		DanaDisetujui: dana,
		Status:        kontrak.StatusDraft,
		CreatedBy:     s.Admin.UserID,
	}
	mustCreate(t, g, k)
	return p, k
}

// NewRunningProposal inserts a BERJALAN proposal with a signed contract and
// the first tranche, as Sign leaves them. The tranche starts PENDING.
func NewRunningProposal(t *testing.T, g *gorm.DB, s *Seed, dana float64) (*proposal.Proposal, *pencairan.Pencairan) {
	t.Helper()
	p, k := NewAcceptedProposal(t, g, s, dana)
	now := time.Now().UTC()
	p.Status = proposal.StatusBerjalan
	if err := g.Save(p).Error; err != nil {
		t.Fatalf("run proposal: %v", err)
	}
	k.Status = kontrak.StatusSigned
	k.FileKontrak = "kontrak/ttd.pdf"
	k.FileSK = "sk/ttd.pdf"
	k.UploadedBy = s.Admin.UserID
	k.UploadedAt = &now
	if err := g.Save(k).Error; err != nil {
		t.Fatalf("sign kontrak: %v", err)
	}
	t1 := &pencairan.Pencairan{
		ID:         id.NewID32(),
		ProposalID: p.ID,
		Termin:     pencairan.Termin1,
		Nominal:    pencairan.Termin1.Nominal(dana),
		Persentase: pencairan.Termin1.Persentase(),
		Status:     pencairan.StatusPending,
		CreatedBy:  s.Admin.UserID,
	}
	mustCreate(t, g, t1)
	return p, t1
}

func mustCreate(t *testing.T, g *gorm.DB, v any) {
	t.Helper()
	if err := g.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}
