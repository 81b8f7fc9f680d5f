package kontrak

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"lppm-backend/internal/adapter/repository/mysql"
	"lppm-backend/internal/domain/fault"
	kontrakDomain "lppm-backend/internal/domain/kontrak"
	pencairanDomain "lppm-backend/internal/domain/pencairan"
	proposalDomain "lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/testutil/fixture"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
)

func setup(t *testing.T) (*Usecase, *gorm.DB, *fixture.Seed) {
	t.Helper()
	g := fixture.NewDB(t)
	s := fixture.SeedBase(t, g)
	return NewUsecase(mysql.NewGormUoW(g), pencairanUC.NewEngine()), g, s
}

func TestSign(t *testing.T) {
	uc, g, s := setup(t)
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		p, _ := fixture.NewAcceptedProposal(t, g, s, 10_000_000)
		_, err := uc.Sign(ctx, SignInput{Actor: s.Ketua, ProposalID: p.ID, FileKontrak: "a.pdf", FileSK: "b.pdf"})
		if fault.KindOf(err) != fault.KindForbidden {
			t.Fatalf("want Forbidden, got %v", err)
		}
	})

	t.Run("both documents required", func(t *testing.T) {
		p, _ := fixture.NewAcceptedProposal(t, g, s, 10_000_000)
		_, err := uc.Sign(ctx, SignInput{Actor: s.Admin, ProposalID: p.ID, FileKontrak: "a.pdf"})
		if fault.KindOf(err) != fault.KindValidation {
			t.Fatalf("missing SK must fail, got %v", err)
		}
	})

	t.Run("activates the grant and opens the first tranche", func(t *testing.T) {
		p, _ := fixture.NewAcceptedProposal(t, g, s, 10_000_000)
		k, err := uc.Sign(ctx, SignInput{
			Actor:       s.Admin,
			ProposalID:  p.ID,
			FileKontrak: "kontrak/ttd.pdf",
			FileSK:      "sk/ttd.pdf",
		})
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		if k.Status != kontrakDomain.StatusSigned || k.UploadedAt == nil {
			t.Fatalf("kontrak not signed: %+v", k)
		}

		var got proposalDomain.Proposal
		g.First(&got, "id = ?", p.ID)
		if got.Status != proposalDomain.StatusBerjalan {
			t.Fatalf("proposal status = %s, want BERJALAN", got.Status)
		}

		var t1 pencairanDomain.Pencairan
		if err := g.Where("proposal_id = ? AND termin = ?", p.ID, pencairanDomain.Termin1).First(&t1).Error; err != nil {
			t.Fatalf("TERMIN_1 missing: %v", err)
		}
		if t1.Nominal != 5_000_000 || t1.Persentase != 50 || t1.Status != pencairanDomain.StatusPending {
			t.Fatalf("TERMIN_1 fields wrong: %+v", t1)
		}
	})

	t.Run("second sign conflicts and keeps one tranche", func(t *testing.T) {
		p, _ := fixture.NewAcceptedProposal(t, g, s, 10_000_000)
		in := SignInput{Actor: s.Admin, ProposalID: p.ID, FileKontrak: "a.pdf", FileSK: "b.pdf"}
		if _, err := uc.Sign(ctx, in); err != nil {
			t.Fatalf("first sign: %v", err)
		}
		if _, err := uc.Sign(ctx, in); fault.KindOf(err) != fault.KindConflict {
			t.Fatalf("second sign must conflict, got %v", err)
		}
		var n int64
		g.Model(&pencairanDomain.Pencairan{}).Where("proposal_id = ?", p.ID).Count(&n)
		if n != 1 {
			t.Fatalf("want exactly 1 tranche, got %d", n)
		}
	})

	t.Run("missing contract row", func(t *testing.T) {
		p := fixture.NewDraftProposal(t, g, s, 10_000_000)
		_, err := uc.Sign(ctx, SignInput{Actor: s.Admin, ProposalID: p.ID, FileKontrak: "a.pdf", FileSK: "b.pdf"})
		if fault.KindOf(err) != fault.KindNotFound {
			t.Fatalf("want NotFound, got %v", err)
		}
	})
}
