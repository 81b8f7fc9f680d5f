package luaran

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"lppm-backend/internal/adapter/repository/mysql"
	"lppm-backend/internal/domain/fault"
	luaranDomain "lppm-backend/internal/domain/luaran"
	pencairanDomain "lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/testutil/fixture"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
)

func setup(t *testing.T) (*Usecase, *gorm.DB, *fixture.Seed) {
	t.Helper()
	g := fixture.NewDB(t)
	s := fixture.SeedBase(t, g)
	return NewUsecase(mysql.NewGormUoW(g), pencairanUC.NewEngine()), g, s
}

func createInput(s *fixture.Seed, proposalID string) CreateInput {
	return CreateInput{
		Actor:      s.Ketua,
		ProposalID: proposalID,
		Jenis:      "PUBLIKASI",
		Judul:      "Artikel jurnal nasional",
		FilePath:   "luaran/artikel.pdf",
	}
}

// disburse moves a tranche to DICAIRKAN directly.
func disburse(t *testing.T, g *gorm.DB, proposalID string, termin pencairanDomain.Termin) {
	t.Helper()
	res := g.Model(&pencairanDomain.Pencairan{}).
		Where("proposal_id = ? AND termin = ?", proposalID, termin).
		Update("status", pencairanDomain.StatusDicairkan)
	if res.Error != nil || res.RowsAffected != 1 {
		t.Fatalf("disburse %s: err=%v rows=%d", termin, res.Error, res.RowsAffected)
	}
}

func seedTermin2(t *testing.T, g *gorm.DB, s *fixture.Seed, proposalID string, dana float64) {
	t.Helper()
	if err := g.Create(&pencairanDomain.Pencairan{
		ID:         "t2" + proposalID[:30],
		ProposalID: proposalID,
		Termin:     pencairanDomain.Termin2,
		Nominal:    pencairanDomain.Termin2.Nominal(dana),
		Persentase: pencairanDomain.Termin2.Persentase(),
		Status:     pencairanDomain.StatusDicairkan,
		CreatedBy:  s.Admin.UserID,
	}).Error; err != nil {
		t.Fatalf("seed termin2: %v", err)
	}
}

func TestCreate(t *testing.T) {
	uc, g, s := setup(t)
	ctx := context.Background()

	t.Run("requires a running grant", func(t *testing.T) {
		p := fixture.NewDraftProposal(t, g, s, 10_000_000)
		_, err := uc.Create(ctx, createInput(s, p.ID))
		if fault.KindOf(err) != fault.KindConflict {
			t.Fatalf("want Conflict, got %v", err)
		}
	})

	t.Run("starts PENDING", func(t *testing.T) {
		p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
		l, err := uc.Create(ctx, createInput(s, p.ID))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if l.StatusVerifikasi != luaranDomain.StatusPending {
			t.Fatalf("status = %s, want PENDING", l.StatusVerifikasi)
		}
	})
}

func TestVerify(t *testing.T) {
	uc, g, s := setup(t)
	ctx := context.Background()

	t.Run("first verified luaran unlocks TERMIN_3", func(t *testing.T) {
		p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
		disburse(t, g, p.ID, pencairanDomain.Termin1)
		seedTermin2(t, g, s, p.ID, 10_000_000)

		l, err := uc.Create(ctx, createInput(s, p.ID))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true})
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if got.StatusVerifikasi != luaranDomain.StatusDiverifikasi || got.VerifiedAt == nil {
			t.Fatalf("luaran not verified: %+v", got)
		}

		var t3 pencairanDomain.Pencairan
		if err := g.Where("proposal_id = ? AND termin = ?", p.ID, pencairanDomain.Termin3).First(&t3).Error; err != nil {
			t.Fatalf("TERMIN_3 missing: %v", err)
		}
		if t3.Nominal != 2_500_000 || t3.Status != pencairanDomain.StatusPending {
			t.Fatalf("TERMIN_3 fields wrong: %+v", t3)
		}
	})

	t.Run("no TERMIN_3 before TERMIN_2 is disbursed", func(t *testing.T) {
		p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
		l, err := uc.Create(ctx, createInput(s, p.ID))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true}); err != nil {
			t.Fatalf("Verify: %v", err)
		}
		var n int64
		g.Model(&pencairanDomain.Pencairan{}).
			Where("proposal_id = ? AND termin = ?", p.ID, pencairanDomain.Termin3).Count(&n)
		if n != 0 {
			t.Fatalf("TERMIN_3 must wait for TERMIN_2")
		}
	})

	t.Run("second verify conflicts", func(t *testing.T) {
		p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
		l, _ := uc.Create(ctx, createInput(s, p.ID))
		if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true}); err != nil {
			t.Fatalf("first verify: %v", err)
		}
		if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true}); fault.KindOf(err) != fault.KindConflict {
			t.Fatalf("second verify must conflict, got %v", err)
		}
	})

	t.Run("rejection needs a note", func(t *testing.T) {
		p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
		l, _ := uc.Create(ctx, createInput(s, p.ID))
		if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: false}); fault.KindOf(err) != fault.KindValidation {
			t.Fatalf("want Validation, got %v", err)
		}
	})
}

func TestDelete_WithdrawsOrphanedTranche(t *testing.T) {
	uc, g, s := setup(t)
	ctx := context.Background()

	p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
	disburse(t, g, p.ID, pencairanDomain.Termin1)
	seedTermin2(t, g, s, p.ID, 10_000_000)

	l, err := uc.Create(ctx, createInput(s, p.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true}); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	// TERMIN_3 exists and is PENDING; deleting the only verified luaran
	// withdraws it
	deleted, err := uc.Delete(ctx, s.Ketua, l.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.FilePath != "luaran/artikel.pdf" {
		t.Fatalf("deleted luaran must carry its file path: %+v", deleted)
	}
	var n int64
	g.Model(&pencairanDomain.Pencairan{}).
		Where("proposal_id = ? AND termin = ?", p.ID, pencairanDomain.Termin3).Count(&n)
	if n != 0 {
		t.Fatalf("orphaned TERMIN_3 must be withdrawn")
	}
}

func TestDelete_KeepsDisbursedTranche(t *testing.T) {
	uc, g, s := setup(t)
	ctx := context.Background()

	p, _ := fixture.NewRunningProposal(t, g, s, 10_000_000)
	disburse(t, g, p.ID, pencairanDomain.Termin1)
	seedTermin2(t, g, s, p.ID, 10_000_000)

	l, _ := uc.Create(ctx, createInput(s, p.ID))
	if _, err := uc.Verify(ctx, VerifyInput{Actor: s.Admin, LuaranID: l.ID, Approve: true}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	disburse(t, g, p.ID, pencairanDomain.Termin3)

	if _, err := uc.Delete(ctx, s.Admin, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var n int64
	g.Model(&pencairanDomain.Pencairan{}).
		Where("proposal_id = ? AND termin = ?", p.ID, pencairanDomain.Termin3).Count(&n)
	if n != 1 {
		t.Fatalf("a disbursed TERMIN_3 must never be withdrawn")
	}
}
