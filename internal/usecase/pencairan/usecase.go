package pencairan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	masterDomain "lppm-backend/internal/domain/master"
	pencairanDomain "lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/domain/uow"
)

type Usecase struct {
	uow    uow.UnitOfWork
	engine *Engine
}

func NewUsecase(u uow.UnitOfWork, engine *Engine) *Usecase {
	return &Usecase{uow: u, engine: engine}
}

type VerifyInput struct {
	Actor       masterDomain.Actor
	PencairanID string
	Approve     bool
	BuktiPath   string
	Keterangan  string
}

// Verify settles a PENDING tranche. Approval marks it DICAIRKAN and stamps
// the disbursement date; rejection records the reason. Either way the
// follow-up tranches are re-derived in the same transaction, so a tranche
// whose last missing precondition was this disbursement appears immediately.
func (u *Usecase) Verify(ctx context.Context, in VerifyInput) (*pencairanDomain.Pencairan, error) {
	if !in.Actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat memverifikasi pencairan")
	}
	if !in.Approve && in.Keterangan == "" {
		return nil, fault.Validation("Keterangan penolakan harus diisi")
	}

	var out *pencairanDomain.Pencairan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Pencairan.GetByID(ctx, in.PencairanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Pencairan tidak ditemukan")
			}
			return err
		}
		if p.Status != pencairanDomain.StatusPending {
			return fault.Conflict("Pencairan sudah diverifikasi")
		}

		if in.Approve {
			now := time.Now()
			p.Status = pencairanDomain.StatusDicairkan
			p.BuktiPath = in.BuktiPath
			p.TanggalPencairan = &now
		} else {
			p.Status = pencairanDomain.StatusDitolak
			p.Keterangan = in.Keterangan
		}
		if err := r.Pencairan.Save(ctx, p); err != nil {
			return err
		}

		if in.Approve {
			if err := u.recheckProposal(ctx, r, p.ProposalID, in.Actor.UserID); err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListByProposal(ctx context.Context, proposalID string) ([]pencairanDomain.Pencairan, error) {
	var out []pencairanDomain.Pencairan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Pencairan.ListByProposalID(ctx, proposalID)
		return err
	})
	return out, err
}

// Recheck sweeps all disbursed TERMIN_1 and TERMIN_2 rows and backfills any
// follow-up tranche whose preconditions are now met. Run out of band when
// tranches may have been missed, e.g. after restoring data.
func (u *Usecase) Recheck(ctx context.Context, actor masterDomain.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, fault.Forbidden("Hanya admin yang dapat menjalankan pengecekan pencairan")
	}
	created := 0
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t1s, err := r.Pencairan.ListByTerminStatus(ctx, pencairanDomain.Termin1, pencairanDomain.StatusDicairkan)
		if err != nil {
			return err
		}
		for _, p := range t1s {
			ok, err := u.engine.EnsureTermin2(ctx, r, p.ProposalID, actor.UserID)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		t2s, err := r.Pencairan.ListByTerminStatus(ctx, pencairanDomain.Termin2, pencairanDomain.StatusDicairkan)
		if err != nil {
			return err
		}
		for _, p := range t2s {
			ok, err := u.engine.EnsureTermin3(ctx, r, p.ProposalID, actor.UserID)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (u *Usecase) recheckProposal(ctx context.Context, r uow.Repos, proposalID, actorID string) error {
	if _, err := u.engine.EnsureTermin2(ctx, r, proposalID, actorID); err != nil {
		return err
	}
	if _, err := u.engine.EnsureTermin3(ctx, r, proposalID, actorID); err != nil {
		return err
	}
	return nil
}
