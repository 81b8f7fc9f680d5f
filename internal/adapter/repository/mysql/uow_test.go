package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	proposalDomain "lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/uow"
	"lppm-backend/pkg/id"
)

func TestGormUoW_WithinTx_RollsBackOnError(t *testing.T) {
	g := newTestDB(t)
	unit := NewGormUoW(g)
	ctx := context.Background()

	boom := errors.New("boom")
	pid := id.NewID32()

	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Proposals.Create(ctx, &proposalDomain.Proposal{
			ID:     pid,
			Judul:  "Uji rollback",
			Status: proposalDomain.StatusDraft,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	var count int64
	g.Model(&proposalDomain.Proposal{}).Where("id = ?", pid).Count(&count)
	if count != 0 {
		t.Fatalf("insert must be rolled back, found %d row(s)", count)
	}
}

func TestGormUoW_WithinTx_Commits(t *testing.T) {
	g := newTestDB(t)
	unit := NewGormUoW(g)
	ctx := context.Background()

	pid := id.NewID32()
	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		return r.Proposals.Create(ctx, &proposalDomain.Proposal{
			ID:     pid,
			Judul:  "Uji commit",
			Status: proposalDomain.StatusDraft,
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	var count int64
	g.Model(&proposalDomain.Proposal{}).Where("id = ?", pid).Count(&count)
	if count != 1 {
		t.Fatalf("committed row missing, count=%d", count)
	}
}

func TestGormUoW_WithinProposalTx_LoadsAndLocksProposal(t *testing.T) {
	g := newTestDB(t)
	unit := NewGormUoW(g)
	ctx := context.Background()

	pid := id.NewID32()
	if err := g.Create(&proposalDomain.Proposal{
		ID:     pid,
		Judul:  "Uji lock",
		Status: proposalDomain.StatusDraft,
	}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := unit.WithinProposalTx(ctx, pid, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.ID != pid || p.Status != proposalDomain.StatusDraft {
			t.Fatalf("wrong proposal passed in: %+v", p)
		}
		p.Status = proposalDomain.StatusDiajukan
		return r.Proposals.Save(ctx, p)
	})
	if err != nil {
		t.Fatalf("WithinProposalTx: %v", err)
	}

	var got proposalDomain.Proposal
	if err := g.Where("id = ?", pid).First(&got).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != proposalDomain.StatusDiajukan {
		t.Fatalf("status not persisted: %s", got.Status)
	}
}

func TestGormUoW_WithinProposalTx_NotFound(t *testing.T) {
	g := newTestDB(t)
	unit := NewGormUoW(g)

	err := unit.WithinProposalTx(context.Background(), id.NewID32(), func(r uow.Repos, p *proposalDomain.Proposal) error {
		t.Fatalf("fn must not run for a missing proposal")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
