package proposal

import (
	"time"

	"lppm-backend/internal/domain/proposal"
)

type CreateInput struct {
	Judul        string  `json:"judul"`
	Abstrak      string  `json:"abstrak"`
	PeriodeID    string  `json:"periode_id"`
	SkemaID      string  `json:"skema_id"`
	DanaDiajukan float64 `json:"dana_diajukan"`
	FilePath     string  `json:"file_path"`
}

type UpdateInput struct {
	Judul        string  `json:"judul"`
	Abstrak      string  `json:"abstrak"`
	SkemaID      string  `json:"skema_id"`
	DanaDiajukan float64 `json:"dana_diajukan"`
	FilePath     string  `json:"file_path"`
}

type AddMemberInput struct {
	Tipe     proposal.MemberType `json:"tipe"`
	PersonID string              `json:"person_id"`
}

type AdminCheckInput struct {
	Status    proposal.StatusAdministrasi `json:"status"`
	Catatan   string                      `json:"catatan"`
	Checklist proposal.Checklist          `json:"checklist"`
}

type AssignReviewersInput struct {
	ReviewerIDs []string `json:"reviewer_ids"`
}

type ApproveInput struct {
	Catatan       string  `json:"catatan"`
	DanaDisetujui float64 `json:"dana_disetujui"`
}

type RevisionUploadInput struct {
	FilePath      string `json:"file_path"`
	CatatanRevisi string `json:"catatan_revisi"`
}

type DTO struct {
	ID            string          `json:"id"`
	Judul         string          `json:"judul"`
	Abstrak       string          `json:"abstrak"`
	PeriodeID     string          `json:"periode_id"`
	SkemaID       string          `json:"skema_id"`
	KetuaID       string          `json:"ketua_id"`
	Status        proposal.Status `json:"status"`
	FilePath      string          `json:"file_path"`
	DanaDiajukan  float64         `json:"dana_diajukan"`
	DanaDisetujui float64         `json:"dana_disetujui"`
	NilaiTotal    float64         `json:"nilai_total"`
	RevisiCount   int             `json:"revisi_count"`
	Catatan       string          `json:"catatan"`
	SubmittedAt   *time.Time      `json:"submitted_at,omitempty"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toDTO(p *proposal.Proposal) *DTO {
	return &DTO{
		ID:            p.ID,
		Judul:         p.Judul,
		Abstrak:       p.Abstrak,
		PeriodeID:     p.PeriodeID,
		SkemaID:       p.SkemaID,
		KetuaID:       p.KetuaID,
		Status:        p.Status,
		FilePath:      p.FilePath,
		DanaDiajukan:  p.DanaDiajukan,
		DanaDisetujui: p.DanaDisetujui,
		NilaiTotal:    p.NilaiTotal,
		RevisiCount:   p.RevisiCount,
		Catatan:       p.Catatan,
		SubmittedAt:   p.SubmittedAt,
		ApprovedAt:    p.ApprovedAt,
		CreatedAt:     p.CreatedAt,
	}
}
