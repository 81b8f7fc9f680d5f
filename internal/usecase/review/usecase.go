package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lppm-backend/internal/domain/fault"
	masterDomain "lppm-backend/internal/domain/master"
	proposalDomain "lppm-backend/internal/domain/proposal"
	reviewDomain "lppm-backend/internal/domain/review"
	"lppm-backend/internal/domain/uow"
	"lppm-backend/pkg/id"
)

type Usecase struct {
	uow       uow.UnitOfWork
	reviewers masterDomain.ReviewerRepository
}

func NewUsecase(u uow.UnitOfWork, reviewers masterDomain.ReviewerRepository) *Usecase {
	return &Usecase{uow: u, reviewers: reviewers}
}

type SubmitInput struct {
	Actor      masterDomain.Actor
	ProposalID string

	NilaiKriteria1 int
	NilaiKriteria2 int
	NilaiKriteria3 int
	NilaiKriteria4 int
	Rekomendasi    reviewDomain.Rekomendasi
	Catatan        string
	FilePath       string
}

func validRekomendasi(r reviewDomain.Rekomendasi) bool {
	switch r {
	case reviewDomain.RekomendasiDiterima, reviewDomain.RekomendasiRevisi, reviewDomain.RekomendasiDitolak:
		return true
	}
	return false
}

// Submit records the calling reviewer's evaluation for the proposal and
// marks the assignment complete. One review per assignment; a second submit
// is a conflict.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*reviewDomain.Review, error) {
	for _, n := range []int{in.NilaiKriteria1, in.NilaiKriteria2, in.NilaiKriteria3, in.NilaiKriteria4} {
		if n < 1 || n > 100 {
			return nil, fault.Validation("Nilai kriteria harus antara 1 dan 100")
		}
	}
	if !validRekomendasi(in.Rekomendasi) {
		return nil, fault.Validation("Rekomendasi tidak valid")
	}

	rev, err := u.reviewers.GetByUserID(ctx, in.Actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.Forbidden("Hanya reviewer yang dapat mengirim review")
		}
		return nil, err
	}

	var out *reviewDomain.Review
	err = u.uow.WithinProposalTx(ctx, in.ProposalID, func(r uow.Repos, p *proposalDomain.Proposal) error {
		if p.Status != proposalDomain.StatusDireview {
			return fault.Conflict("Proposal tidak dalam tahap review")
		}
		assignment, err := assignmentFor(ctx, r, in.ProposalID, rev.ID)
		if err != nil {
			return err
		}
		if assignment.Status == reviewDomain.AssignmentSelesai {
			return fault.Conflict("Review sudah pernah dikirim untuk proposal ini")
		}

		out = &reviewDomain.Review{
			ID:             id.NewID32(),
			AssignmentID:   assignment.ID,
			ReviewerID:     rev.ID,
			NilaiKriteria1: in.NilaiKriteria1,
			NilaiKriteria2: in.NilaiKriteria2,
			NilaiKriteria3: in.NilaiKriteria3,
			NilaiKriteria4: in.NilaiKriteria4,
			NilaiTotal:     reviewDomain.TotalOf(in.NilaiKriteria1, in.NilaiKriteria2, in.NilaiKriteria3, in.NilaiKriteria4),
			Rekomendasi:    in.Rekomendasi,
			Catatan:        in.Catatan,
			FilePath:       in.FilePath,
		}
		if err := r.Reviews.Create(ctx, out); err != nil {
			return err
		}
		assignment.Status = reviewDomain.AssignmentSelesai
		return r.Assignments.Save(ctx, assignment)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summary aggregates the proposal's current review round.
func (u *Usecase) Summary(ctx context.Context, proposalID string) (reviewDomain.Summary, error) {
	var s reviewDomain.Summary
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		assignments, err := r.Assignments.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		reviews, err := r.Reviews.ListByProposalID(ctx, proposalID)
		if err != nil {
			return err
		}
		s = reviewDomain.Summarize(assignments, reviews)
		return nil
	})
	return s, err
}

// ListByProposal returns the submitted reviews; admins see everything, the
// proposal owner sees them too once visible, reviewers only their own round.
func (u *Usecase) ListByProposal(ctx context.Context, proposalID string) ([]reviewDomain.Review, error) {
	var out []reviewDomain.Review
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Reviews.ListByProposalID(ctx, proposalID)
		return err
	})
	return out, err
}

func assignmentFor(ctx context.Context, r uow.Repos, proposalID, reviewerID string) (*reviewDomain.Assignment, error) {
	assignments, err := r.Assignments.ListByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ReviewerID == reviewerID {
			return &assignments[i], nil
		}
	}
	return nil, fault.Forbidden("Anda tidak ditugaskan untuk mereview proposal ini")
}
