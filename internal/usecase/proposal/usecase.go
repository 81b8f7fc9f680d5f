package proposal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	kontrakDomain "lppm-backend/internal/domain/kontrak"
	masterDomain "lppm-backend/internal/domain/master"
	proposalDomain "lppm-backend/internal/domain/proposal"
	reviewDomain "lppm-backend/internal/domain/review"
	sequenceDomain "lppm-backend/internal/domain/sequence"
	"lppm-backend/internal/domain/uow"
	"lppm-backend/pkg/id"
)

// Usecase drives every proposal lifecycle event. Each action re-validates its
// full precondition set inside one transaction: independent actors (dosen,
// reviewer, admin) can race, and the locked re-check is the concurrency guard.
type Usecase struct {
	uow uow.UnitOfWork

	// base-DB copies, for validation before a transaction starts; guards
	// that run under the proposal lock go through the tx-bound uow.Repos
	periodes  masterDomain.PeriodeRepository
	reviewers masterDomain.ReviewerRepository
	dosen     masterDomain.DosenRepository
}

func NewUsecase(tx uow.UnitOfWork, periodes masterDomain.PeriodeRepository, reviewers masterDomain.ReviewerRepository, dosen masterDomain.DosenRepository) *Usecase {
	return &Usecase{uow: tx, periodes: periodes, reviewers: reviewers, dosen: dosen}
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fault.NotFound(msg)
	}
	return err
}

// CreateDraft registers a new DRAFT proposal with the calling dosen as ketua.
func (u *Usecase) CreateDraft(ctx context.Context, actor masterDomain.Actor, in CreateInput) (*DTO, error) {
	if actor.Role != masterDomain.RoleDosen {
		return nil, fault.Forbidden("Hanya dosen yang dapat membuat proposal")
	}
	if strings.TrimSpace(in.Judul) == "" {
		return nil, fault.Validation("Judul penelitian harus diisi")
	}
	if len(in.Judul) > 500 {
		return nil, fault.Validation("Judul maksimal 500 karakter")
	}
	if len(in.Abstrak) > 500 {
		return nil, fault.Validation("Abstrak maksimal 500 karakter")
	}
	d, err := u.dosen.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, notFound(err, "Data dosen tidak ditemukan")
	}
	if _, err := u.periodes.GetByID(ctx, in.PeriodeID); err != nil {
		return nil, notFound(err, "Periode tidak ditemukan")
	}

	p := &proposalDomain.Proposal{
		ID:           id.NewID32(),
		Judul:        in.Judul,
		Abstrak:      in.Abstrak,
		PeriodeID:    in.PeriodeID,
		SkemaID:      in.SkemaID,
		KetuaID:      d.ID,
		CreatorID:    actor.UserID,
		Status:       proposalDomain.StatusDraft,
		FilePath:     in.FilePath,
		DanaDiajukan: in.DanaDiajukan,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Proposals.Create(ctx, p); err != nil {
			return err
		}
		// ketua counts as the first team member
		return r.Members.Create(ctx, &proposalDomain.Member{
			ID:         id.NewID32(),
			ProposalID: p.ID,
			Tipe:       proposalDomain.MemberDosen,
			PersonID:   d.ID,
			IsKetua:    true,
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByID(ctx, proposalID)
		if err != nil {
			return notFound(err, "Proposal tidak ditemukan")
		}
		dto = toDTO(p)
		return nil
	})
	return dto, err
}

// UpdateDraft rewrites the editable fields. Only the creator may edit, and
// only while the proposal is still DRAFT.
func (u *Usecase) UpdateDraft(ctx context.Context, actor masterDomain.Actor, proposalID string, in UpdateInput) (*DTO, error) {
	if strings.TrimSpace(in.Judul) == "" {
		return nil, fault.Validation("Judul penelitian harus diisi")
	}
	if len(in.Judul) > 500 {
		return nil, fault.Validation("Judul maksimal 500 karakter")
	}
	if len(in.Abstrak) > 500 {
		return nil, fault.Validation("Abstrak maksimal 500 karakter")
	}
	var dto *DTO
	err := u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.CreatorID != actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
		}
		if p.Status != proposalDomain.StatusDraft {
			return fault.Conflict("Hanya proposal DRAFT yang dapat diubah")
		}
		p.Judul = in.Judul
		p.Abstrak = in.Abstrak
		p.SkemaID = in.SkemaID
		p.DanaDiajukan = in.DanaDiajukan
		p.FilePath = in.FilePath
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// AddMember adds a dosen or mahasiswa to the team while the proposal is DRAFT.
func (u *Usecase) AddMember(ctx context.Context, actor masterDomain.Actor, proposalID string, in AddMemberInput) error {
	if in.Tipe != proposalDomain.MemberDosen && in.Tipe != proposalDomain.MemberMahasiswa {
		return fault.Validation("Tipe anggota tidak valid")
	}
	if in.PersonID == "" {
		return fault.Validation("Anggota harus dipilih")
	}
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.CreatorID != actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
		}
		if p.Status != proposalDomain.StatusDraft {
			return fault.Conflict("Hanya proposal DRAFT yang dapat menambah anggota")
		}
		n, err := r.Members.CountByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		if n >= proposalDomain.MaxMembers {
			return fault.Conflict("Maksimal 4 anggota tim (termasuk ketua)")
		}
		return r.Members.Create(ctx, &proposalDomain.Member{
			ID:         id.NewID32(),
			ProposalID: proposalID,
			Tipe:       in.Tipe,
			PersonID:   in.PersonID,
		})
	})
}

func (u *Usecase) RemoveMember(ctx context.Context, actor masterDomain.Actor, proposalID, memberID string) error {
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.CreatorID != actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
		}
		if p.Status != proposalDomain.StatusDraft {
			return fault.Conflict("Anggota hanya dapat diubah selama status DRAFT")
		}
		m, err := r.Members.GetByID(ctx, memberID)
		if err != nil {
			return notFound(err, "Anggota tidak ditemukan")
		}
		if m.ProposalID != proposalID {
			return fault.NotFound("Anggota tidak ditemukan")
		}
		if m.IsKetua {
			return fault.Conflict("Ketua tidak dapat dihapus dari tim")
		}
		return r.Members.Delete(ctx, memberID)
	})
}

// Submit moves DRAFT to DIAJUKAN after the completeness guards pass.
func (u *Usecase) Submit(ctx context.Context, actor masterDomain.Actor, proposalID string) (*DTO, error) {
	var dto *DTO
	err := u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.CreatorID != actor.UserID {
			return fault.Forbidden("Anda tidak dapat submit proposal ini")
		}
		if strings.TrimSpace(p.Judul) == "" || strings.TrimSpace(p.Abstrak) == "" {
			return fault.Validation("Judul dan abstrak harus diisi")
		}
		if p.FilePath == "" {
			return fault.Validation("File proposal harus diupload")
		}
		per, err := r.Periodes.GetByID(ctx, p.PeriodeID)
		if err != nil {
			return notFound(err, "Periode tidak ditemukan")
		}
		now := time.Now().UTC()
		if per.Status != "AKTIF" {
			return fault.Validation("Periode sudah tidak aktif")
		}
		if now.After(per.TanggalTutup) {
			return fault.Validation(fmt.Sprintf("Periode pengajuan sudah ditutup pada %s", per.TanggalTutup.Format("02-01-2006")))
		}
		n, err := r.Members.CountByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		if n < 1 {
			return fault.Validation("Proposal harus memiliki anggota tim (minimal ketua)")
		}
		if err := proposalDomain.Apply(p, proposalDomain.EventSubmit, now); err != nil {
			return err
		}
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// AdminCheck records the 14-component administrative checklist. Failing the
// check sends the proposal to REVISI with a mandatory note; passing leaves it
// DIAJUKAN awaiting reviewer assignment.
func (u *Usecase) AdminCheck(ctx context.Context, actor masterDomain.Actor, proposalID string, in AdminCheckInput) error {
	if !actor.IsAdmin() {
		return fault.Forbidden("Hanya admin yang dapat melakukan penilaian administratif")
	}
	if in.Status != proposalDomain.AdministrasiLolos && in.Status != proposalDomain.AdministrasiTidakLolos {
		return fault.Validation("Status administratif harus dipilih")
	}
	if in.Status == proposalDomain.AdministrasiTidakLolos && strings.TrimSpace(in.Catatan) == "" {
		return fault.Validation("Catatan revisi wajib diisi jika tidak lolos")
	}
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.Status != proposalDomain.StatusDiajukan {
			return fault.Conflict("Penilaian administratif hanya untuk proposal yang sudah diajukan")
		}
		now := time.Now().UTC()
		p.StatusAdministrasi = in.Status
		p.CatatanAdministrasi = in.Catatan
		p.CheckedAdminBy = actor.UserID
		p.CheckedAdminAt = &now
		p.Checklist = in.Checklist
		if in.Status == proposalDomain.AdministrasiTidakLolos {
			p.Catatan = in.Catatan
			if err := proposalDomain.Apply(p, proposalDomain.EventAdminReject, now); err != nil {
				return err
			}
		}
		return r.Proposals.Save(ctx, p)
	})
}

// AssignReviewers creates exactly two assignments and moves the proposal to
// DIREVIEW. Reviewers must be distinct, must exist, and must not belong to the
// proposal team.
func (u *Usecase) AssignReviewers(ctx context.Context, actor masterDomain.Actor, proposalID string, in AssignReviewersInput) error {
	if !actor.IsAdmin() {
		return fault.Forbidden("Hanya admin yang dapat menugaskan reviewer")
	}
	if len(in.ReviewerIDs) != reviewDomain.ReviewersPerRound {
		return fault.Validation("Harus memilih 2 reviewer")
	}
	if in.ReviewerIDs[0] == in.ReviewerIDs[1] {
		return fault.Validation("Tidak boleh memilih reviewer yang sama dua kali")
	}
	reviewers, err := u.reviewers.GetByIDs(ctx, in.ReviewerIDs)
	if err != nil {
		return err
	}
	if len(reviewers) != reviewDomain.ReviewersPerRound {
		return fault.Validation("Reviewer tidak valid")
	}

	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		members, err := r.Members.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		teamUserIDs := map[string]bool{p.CreatorID: true}
		for _, m := range members {
			if m.Tipe != proposalDomain.MemberDosen {
				continue
			}
			d, err := r.Dosen.GetByID(ctx, m.PersonID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			teamUserIDs[d.UserID] = true
		}
		for _, rv := range reviewers {
			if teamUserIDs[rv.UserID] {
				return fault.Validation("Ketua atau anggota tim proposal tidak boleh menjadi reviewer")
			}
		}

		now := time.Now().UTC()
		if err := proposalDomain.Apply(p, proposalDomain.EventAssignReviewers, now); err != nil {
			return err
		}
		deadline := now.AddDate(0, 0, reviewDomain.DeadlineDays)
		for _, rv := range reviewers {
			a := &reviewDomain.Assignment{
				ID:         id.NewID32(),
				ProposalID: proposalID,
				ReviewerID: rv.ID,
				Status:     reviewDomain.AssignmentPending,
				Deadline:   deadline,
			}
			if err := r.Assignments.Create(ctx, a); err != nil {
				return err
			}
		}
		return r.Proposals.Save(ctx, p)
	})
}

// Approve moves DIREVIEW to DITERIMA once every assigned reviewer has a
// completed review, stores the mean score, and creates the DRAFT contract
// with freshly generated document numbers in the same transaction.
func (u *Usecase) Approve(ctx context.Context, actor masterDomain.Actor, proposalID string, in ApproveInput) (*DTO, error) {
	if !actor.IsAdmin() {
		return nil, fault.Forbidden("Hanya admin yang dapat approve proposal")
	}
	var dto *DTO
	err := u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		assignments, err := r.Assignments.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		reviews, err := r.Reviews.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		sum := reviewDomain.Summarize(assignments, reviews)
		if !sum.AllComplete {
			return fault.Conflict("Belum semua reviewer menyelesaikan review")
		}

		now := time.Now().UTC()
		if err := proposalDomain.Apply(p, proposalDomain.EventApprove, now); err != nil {
			return err
		}
		p.NilaiTotal = sum.Average
		p.Catatan = in.Catatan
		p.DanaDisetujui = in.DanaDisetujui
		if p.DanaDisetujui == 0 {
			p.DanaDisetujui = p.DanaDiajukan
		}
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}

		year := now.Year()
		nKontrak, err := r.Sequences.Next(ctx, sequenceDomain.Key(kontrakDomain.CounterKontrak, year), year)
		if err != nil {
			return err
		}
		nSK, err := r.Sequences.Next(ctx, sequenceDomain.Key(kontrakDomain.CounterSK, year), year)
		if err != nil {
			return err
		}
		k := &kontrakDomain.Kontrak{
			ID:            id.NewID32(),
			ProposalID:    proposalID,
			NomorKontrak:  kontrakDomain.FormatNomorKontrak(year, nKontrak),
			NomorSK:       kontrakDomain.FormatNomorSK(year, nSK),
			DanaDisetujui: p.DanaDisetujui,
			Status:        kontrakDomain.StatusDraft,
			CreatedBy:     actor.UserID,
		}
		if err := r.Kontrak.Create(ctx, k); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject is terminal and requires a non-empty reason.
func (u *Usecase) Reject(ctx context.Context, actor masterDomain.Actor, proposalID, catatan string) error {
	if !actor.IsAdmin() {
		return fault.Forbidden("Hanya admin yang dapat menolak proposal")
	}
	if strings.TrimSpace(catatan) == "" {
		return fault.Validation("Alasan penolakan harus diisi")
	}
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if err := proposalDomain.Apply(p, proposalDomain.EventReject, time.Now().UTC()); err != nil {
			return err
		}
		p.Catatan = catatan
		return r.Proposals.Save(ctx, p)
	})
}

// RequestRevision sends DIREVIEW back to REVISI, bounded by MaxRevisi rounds.
func (u *Usecase) RequestRevision(ctx context.Context, actor masterDomain.Actor, proposalID, catatan string) error {
	if !actor.IsAdmin() {
		return fault.Forbidden("Hanya admin yang dapat meminta revisi")
	}
	if strings.TrimSpace(catatan) == "" {
		return fault.Validation("Catatan revisi harus diisi")
	}
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.RevisiCount >= proposalDomain.MaxRevisi {
			return fault.Conflict("Proposal sudah melewati batas maksimal revisi (2x)")
		}
		if err := proposalDomain.Apply(p, proposalDomain.EventRequestRevision, time.Now().UTC()); err != nil {
			return err
		}
		p.Catatan = catatan
		p.RevisiCount++
		return r.Proposals.Save(ctx, p)
	})
}

// UploadRevision replaces the proposal file and restarts the review round:
// assignments reset to PENDING and prior reviews are deleted. When no
// reviewers were assigned yet (administrative revision) the proposal returns
// to DIAJUKAN instead of DIREVIEW.
func (u *Usecase) UploadRevision(ctx context.Context, actor masterDomain.Actor, proposalID string, in RevisionUploadInput) error {
	if strings.TrimSpace(in.FilePath) == "" {
		return fault.Validation("File revisi harus diupload")
	}
	return u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.CreatorID != actor.UserID {
			return fault.Forbidden("Anda tidak memiliki akses ke proposal ini")
		}
		if err := proposalDomain.Apply(p, proposalDomain.EventUploadRevision, time.Now().UTC()); err != nil {
			return err
		}
		assignments, err := r.Assignments.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			p.Status = proposalDomain.StatusDiajukan
		} else {
			if err := r.Assignments.ResetByProposalID(ctx, proposalID); err != nil {
				return err
			}
			if err := r.Reviews.DeleteByProposalID(ctx, proposalID); err != nil {
				return err
			}
		}
		p.FilePath = in.FilePath
		p.CatatanRevisi = in.CatatanRevisi
		p.NilaiTotal = 0
		return r.Proposals.Save(ctx, p)
	})
}
