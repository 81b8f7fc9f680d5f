package luaran

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	luaranDomain "lppm-backend/internal/domain/luaran"
	masterDomain "lppm-backend/internal/domain/master"
	pencairanDomain "lppm-backend/internal/domain/pencairan"
	proposalDomain "lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/uow"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
	"lppm-backend/pkg/id"
)

type Usecase struct {
	uow    uow.UnitOfWork
	engine *pencairanUC.Engine
}

func NewUsecase(u uow.UnitOfWork, engine *pencairanUC.Engine) *Usecase {
	return &Usecase{uow: u, engine: engine}
}

type CreateInput struct {
	Actor      masterDomain.Actor
	ProposalID string
	Jenis      string
	Judul      string
	Deskripsi  string
	FilePath   string
}

type VerifyInput struct {
	Actor    masterDomain.Actor
	LuaranID string
	Approve  bool
	Catatan  string
}

// Create registers a research output for a running or completed proposal.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*luaranDomain.Luaran, error) {
	if in.Judul == "" || in.Jenis == "" {
		return nil, fault.Validation("Jenis dan judul luaran harus diisi")
	}
	if in.FilePath == "" {
		return nil, fault.Validation("File luaran harus diupload")
	}
	var out *luaranDomain.Luaran
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if !in.Actor.IsAdmin() && p.CreatorID != in.Actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
		}
		if p.Status != proposalDomain.StatusBerjalan && p.Status != proposalDomain.StatusSelesai {
			return fault.Conflict("Luaran hanya dapat ditambahkan setelah penelitian berjalan")
		}
		out = &luaranDomain.Luaran{
			ID:               id.NewID32(),
			ProposalID:       in.ProposalID,
			Jenis:            in.Jenis,
			Judul:            in.Judul,
			Deskripsi:        in.Deskripsi,
			FilePath:         in.FilePath,
			StatusVerifikasi: luaranDomain.StatusPending,
			CreatedBy:        in.Actor.UserID,
		}
		return r.Luaran.Create(ctx, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Verify settles a PENDING luaran. The first verified luaran unlocks the
// final tranche, derived here in the same transaction.
func (u *Usecase) Verify(ctx context.Context, in VerifyInput) (*luaranDomain.Luaran, error) {
	if !in.Actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat memverifikasi luaran")
	}
	if !in.Approve && in.Catatan == "" {
		return nil, fault.Validation("Catatan penolakan harus diisi")
	}
	var out *luaranDomain.Luaran
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Luaran.GetByID(ctx, in.LuaranID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Luaran tidak ditemukan")
			}
			return err
		}
		if l.StatusVerifikasi != luaranDomain.StatusPending {
			return fault.Conflict("Luaran sudah diverifikasi")
		}
		now := time.Now()
		l.CatatanVerifikasi = in.Catatan
		l.VerifiedBy = in.Actor.UserID
		l.VerifiedAt = &now
		if in.Approve {
			l.StatusVerifikasi = luaranDomain.StatusDiverifikasi
		} else {
			l.StatusVerifikasi = luaranDomain.StatusDitolak
		}
		if err := r.Luaran.Save(ctx, l); err != nil {
			return err
		}
		if in.Approve {
			if _, err := u.engine.EnsureTermin3(ctx, r, l.ProposalID, in.Actor.UserID); err != nil {
				return err
			}
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a luaran and returns it so the caller can clean up the
// stored file. When the deleted luaran was the last verified one and the
// final tranche is still pending, that tranche is withdrawn with it.
func (u *Usecase) Delete(ctx context.Context, actor masterDomain.Actor, luaranID string) (*luaranDomain.Luaran, error) {
	var out *luaranDomain.Luaran
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Luaran.GetByID(ctx, luaranID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Luaran tidak ditemukan")
			}
			return err
		}
		if !actor.IsAdmin() && l.CreatedBy != actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke luaran ini")
		}
		wasVerified := l.StatusVerifikasi == luaranDomain.StatusDiverifikasi
		if err := r.Luaran.Delete(ctx, luaranID); err != nil {
			return err
		}
		out = l
		if !wasVerified {
			return nil
		}
		n, err := r.Luaran.CountVerified(ctx, l.ProposalID)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		t3, err := r.Pencairan.GetByProposalTermin(ctx, l.ProposalID, pencairanDomain.Termin3)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if t3.Status != pencairanDomain.StatusPending {
			return nil
		}
		return r.Pencairan.DeleteByProposalTermin(ctx, l.ProposalID, pencairanDomain.Termin3)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListByProposal(ctx context.Context, proposalID string) ([]luaranDomain.Luaran, error) {
	var out []luaranDomain.Luaran
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Luaran.ListByProposalID(ctx, proposalID)
		return err
	})
	return out, err
}
