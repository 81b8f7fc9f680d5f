package pencairan

import (
	"context"
	"errors"

	"gorm.io/gorm"

	monitoringDomain "lppm-backend/internal/domain/monitoring"
	pencairanDomain "lppm-backend/internal/domain/pencairan"
	"lppm-backend/internal/domain/uow"
	"lppm-backend/pkg/id"
)

// Engine derives which tranches must exist for a proposal. Every Ensure call
// is idempotent: creation goes through the unique-index-backed insert, so it
// is safe to fire from any trigger point any number of times.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// EnsureTermin1 creates the 50% tranche at contract-sign time.
func (e *Engine) EnsureTermin1(ctx context.Context, r uow.Repos, proposalID string, dana float64, createdBy string) (bool, error) {
	return e.ensure(ctx, r, proposalID, pencairanDomain.Termin1, dana, createdBy,
		"Pencairan otomatis setelah kontrak ditandatangani")
}

// EnsureTermin2 creates the 25% tranche once TERMIN_1 is disbursed and the
// final report is approved. Both preconditions are re-read here so every
// trigger point shares one rule.
func (e *Engine) EnsureTermin2(ctx context.Context, r uow.Repos, proposalID, createdBy string) (bool, error) {
	t1, err := r.Pencairan.GetByProposalTermin(ctx, proposalID, pencairanDomain.Termin1)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if t1.Status != pencairanDomain.StatusDicairkan {
		return false, nil
	}
	m, err := r.Monitoring.GetByProposalID(ctx, proposalID)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if m.VerifikasiAkhirStatus != monitoringDomain.VerifikasiApproved {
		return false, nil
	}
	dana, err := approvedFunding(ctx, r, proposalID)
	if err != nil {
		return false, err
	}
	return e.ensure(ctx, r, proposalID, pencairanDomain.Termin2, dana, createdBy,
		"Pencairan otomatis setelah TERMIN_1 dicairkan dan laporan akhir disetujui")
}

// EnsureTermin3 creates the final 25% tranche once TERMIN_2 is disbursed and
// at least one luaran has been verified.
func (e *Engine) EnsureTermin3(ctx context.Context, r uow.Repos, proposalID, createdBy string) (bool, error) {
	t2, err := r.Pencairan.GetByProposalTermin(ctx, proposalID, pencairanDomain.Termin2)
	if err != nil {
		return false, ignoreNotFound(err)
	}
	if t2.Status != pencairanDomain.StatusDicairkan {
		return false, nil
	}
	n, err := r.Luaran.CountVerified(ctx, proposalID)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	dana, err := approvedFunding(ctx, r, proposalID)
	if err != nil {
		return false, err
	}
	return e.ensure(ctx, r, proposalID, pencairanDomain.Termin3, dana, createdBy,
		"Pencairan otomatis setelah luaran diverifikasi")
}

func (e *Engine) ensure(ctx context.Context, r uow.Repos, proposalID string, t pencairanDomain.Termin, dana float64, createdBy, keterangan string) (bool, error) {
	return r.Pencairan.CreateIfAbsent(ctx, &pencairanDomain.Pencairan{
		ID:         id.NewID32(),
		ProposalID: proposalID,
		Termin:     t,
		Nominal:    t.Nominal(dana),
		Persentase: t.Persentase(),
		Status:     pencairanDomain.StatusPending,
		Keterangan: keterangan,
		CreatedBy:  createdBy,
	})
}

func approvedFunding(ctx context.Context, r uow.Repos, proposalID string) (float64, error) {
	p, err := r.Proposals.GetByID(ctx, proposalID)
	if err != nil {
		return 0, err
	}
	return p.DanaDisetujui, nil
}

// ignoreNotFound maps a missing precondition row to "do nothing" instead of
// an error: the tranche simply is not due yet.
func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
