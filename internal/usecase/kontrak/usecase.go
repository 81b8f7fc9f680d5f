package kontrak

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	kontrakDomain "lppm-backend/internal/domain/kontrak"
	masterDomain "lppm-backend/internal/domain/master"
	proposalDomain "lppm-backend/internal/domain/proposal"
	"lppm-backend/internal/domain/uow"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
)

type Usecase struct {
	uow    uow.UnitOfWork
	engine *pencairanUC.Engine
}

func NewUsecase(u uow.UnitOfWork, engine *pencairanUC.Engine) *Usecase {
	return &Usecase{uow: u, engine: engine}
}

type SignInput struct {
	Actor       masterDomain.Actor
	ProposalID  string
	FileKontrak string
	FileSK      string
}

// Sign uploads both signed documents, activates the contract and starts the
// grant: the proposal moves to BERJALAN and the first tranche is created, all
// in one transaction.
func (u *Usecase) Sign(ctx context.Context, in SignInput) (*kontrakDomain.Kontrak, error) {
	if !in.Actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat mengunggah kontrak")
	}
	if in.FileKontrak == "" || in.FileSK == "" {
		return nil, fault.Validation("File kontrak dan file SK harus diupload")
	}

	var out *kontrakDomain.Kontrak
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		k, err := r.Kontrak.GetByProposalID(ctx, in.ProposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Kontrak tidak ditemukan untuk proposal ini")
			}
			return err
		}
		if k.Status != kontrakDomain.StatusDraft {
			return fault.Conflict("Kontrak sudah ditandatangani")
		}

		now := time.Now()
		if err := proposalDomain.Apply(p, proposalDomain.EventContractSigned, now); err != nil {
			return err
		}
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}

		k.Status = kontrakDomain.StatusSigned
		k.FileKontrak = in.FileKontrak
		k.FileSK = in.FileSK
		k.UploadedBy = in.Actor.UserID
		k.UploadedAt = &now
		if err := r.Kontrak.Save(ctx, k); err != nil {
			return err
		}

		_, err = u.engine.EnsureTermin1(ctx, r, p.ID, p.DanaDisetujui, in.Actor.UserID)
		if err != nil {
			return err
		}
		out = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) GetByProposal(ctx context.Context, proposalID string) (*kontrakDomain.Kontrak, error) {
	var out *kontrakDomain.Kontrak
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		k, err := r.Kontrak.GetByProposalID(ctx, proposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Kontrak tidak ditemukan")
			}
			return err
		}
		out = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
