package monitoring

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	kontrakDomain "lppm-backend/internal/domain/kontrak"
	masterDomain "lppm-backend/internal/domain/master"
	monitoringDomain "lppm-backend/internal/domain/monitoring"
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

type UploadKemajuanInput struct {
	Actor      masterDomain.Actor
	ProposalID string
	Laporan    string
	FilePath   string
	Persentase int
}

type UploadAkhirInput struct {
	Actor      masterDomain.Actor
	ProposalID string
	Laporan    string
	FilePath   string
}

type VerifyInput struct {
	Actor      masterDomain.Actor
	ProposalID string
	Approve    bool
	Catatan    string
}

// UploadKemajuan stores or replaces the progress report. A re-upload clears
// the previous verification so the admin reviews the new file.
func (u *Usecase) UploadKemajuan(ctx context.Context, in UploadKemajuanInput) (*monitoringDomain.Monitoring, error) {
	if in.FilePath == "" {
		return nil, fault.Validation("File laporan kemajuan harus diupload")
	}
	if in.Persentase < 0 || in.Persentase > 100 {
		return nil, fault.Validation("Persentase kemajuan harus antara 0 dan 100")
	}
	var out *monitoringDomain.Monitoring
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if err := guardOwnerRunning(in.Actor, p); err != nil {
			return err
		}
		m, err := getOrCreate(ctx, r, in.ProposalID)
		if err != nil {
			return err
		}
		m.LaporanKemajuan = in.Laporan
		m.FileKemajuan = in.FilePath
		m.PersentaseKemajuan = in.Persentase
		m.VerifikasiKemajuanStatus = ""
		m.VerifikasiKemajuanAt = nil
		m.CatatanKemajuan = ""
		if err := r.Monitoring.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UploadAkhir stores or replaces the final report, clearing its verification.
func (u *Usecase) UploadAkhir(ctx context.Context, in UploadAkhirInput) (*monitoringDomain.Monitoring, error) {
	if in.FilePath == "" {
		return nil, fault.Validation("File laporan akhir harus diupload")
	}
	var out *monitoringDomain.Monitoring
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if err := guardOwnerRunning(in.Actor, p); err != nil {
			return err
		}
		m, err := getOrCreate(ctx, r, in.ProposalID)
		if err != nil {
			return err
		}
		m.LaporanAkhir = in.Laporan
		m.FileAkhir = in.FilePath
		m.VerifikasiAkhirStatus = ""
		m.VerifikasiAkhirAt = nil
		m.CatatanAkhir = ""
		if err := r.Monitoring.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyKemajuan settles the progress-report verification.
func (u *Usecase) VerifyKemajuan(ctx context.Context, in VerifyInput) (*monitoringDomain.Monitoring, error) {
	if !in.Actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat memverifikasi laporan")
	}
	if !in.Approve && in.Catatan == "" {
		return nil, fault.Validation("Catatan penolakan harus diisi")
	}
	var out *monitoringDomain.Monitoring
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		m, err := r.Monitoring.GetByProposalID(ctx, in.ProposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Laporan monitoring tidak ditemukan")
			}
			return err
		}
		if m.FileKemajuan == "" {
			return fault.Conflict("Laporan kemajuan belum diupload")
		}
		now := time.Now()
		m.VerifikasiKemajuanAt = &now
		m.CatatanKemajuan = in.Catatan
		if in.Approve {
			m.VerifikasiKemajuanStatus = monitoringDomain.VerifikasiApproved
		} else {
			m.VerifikasiKemajuanStatus = monitoringDomain.VerifikasiRejected
		}
		if err := r.Monitoring.Save(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyAkhir settles the final-report verification. Approval ends the
// research: the proposal completes, progress is forced to 100% and the
// second tranche is derived in the same transaction.
func (u *Usecase) VerifyAkhir(ctx context.Context, in VerifyInput) (*monitoringDomain.Monitoring, error) {
	if !in.Actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat memverifikasi laporan")
	}
	if !in.Approve && in.Catatan == "" {
		return nil, fault.Validation("Catatan penolakan harus diisi")
	}
	var out *monitoringDomain.Monitoring
	err := u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		m, err := r.Monitoring.GetByProposalID(ctx, in.ProposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Laporan monitoring tidak ditemukan")
			}
			return err
		}
		if m.FileAkhir == "" {
			return fault.Conflict("Laporan akhir belum diupload")
		}
		now := time.Now()
		m.VerifikasiAkhirAt = &now
		m.CatatanAkhir = in.Catatan
		if in.Approve {
			m.VerifikasiAkhirStatus = monitoringDomain.VerifikasiApproved
			m.PersentaseKemajuan = 100
		} else {
			m.VerifikasiAkhirStatus = monitoringDomain.VerifikasiRejected
		}
		if err := r.Monitoring.Save(ctx, m); err != nil {
			return err
		}

		if in.Approve {
			if err := proposalDomain.Apply(p, proposalDomain.EventComplete, now); err != nil {
				return err
			}
			if err := r.Proposals.Save(ctx, p); err != nil {
				return err
			}
			if _, err := u.engine.EnsureTermin2(ctx, r, p.ID, in.Actor.UserID); err != nil {
				return err
			}
			// the contract closes with the research
			k, err := r.Kontrak.GetByProposalID(ctx, p.ID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			} else {
				k.Status = kontrakDomain.StatusSelesai
				if err := r.Kontrak.Save(ctx, k); err != nil {
					return err
				}
			}
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*monitoringDomain.Monitoring, error) {
	var out *monitoringDomain.Monitoring
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Monitoring.GetByProposalID(ctx, proposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("Laporan monitoring tidak ditemukan")
			}
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func guardOwnerRunning(actor masterDomain.Actor, p *proposalDomain.Proposal) error {
	if !actor.IsAdmin() && p.CreatorID != actor.UserID {
		return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
	}
	if p.Status != proposalDomain.StatusBerjalan {
		return fault.Conflict("Laporan hanya dapat diupload saat penelitian berjalan")
	}
	return nil
}

func getOrCreate(ctx context.Context, r uow.Repos, proposalID string) (*monitoringDomain.Monitoring, error) {
	m, err := r.Monitoring.GetByProposalID(ctx, proposalID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	m = &monitoringDomain.Monitoring{ID: id.NewID32(), ProposalID: proposalID}
	if err := r.Monitoring.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
