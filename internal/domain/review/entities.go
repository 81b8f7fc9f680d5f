package review

import "time"

// AssignmentStatus tracks a single reviewer's progress on one proposal.
type AssignmentStatus string

const (
	AssignmentPending AssignmentStatus = "PENDING"
	AssignmentSelesai AssignmentStatus = "SELESAI"
)

// ReviewersPerRound is fixed by the LPPM guideline: every round gets exactly
// two independent evaluations.
const ReviewersPerRound = 2

// DeadlineDays is how long a reviewer gets from assignment to deadline.
const DeadlineDays = 7

type Assignment struct {
	ID         string           `gorm:"primaryKey;size:32" json:"id"`
	ProposalID string           `gorm:"size:32;index;uniqueIndex:ux_assignment_proposal_reviewer" json:"proposal_id"`
	ReviewerID string           `gorm:"size:32;uniqueIndex:ux_assignment_proposal_reviewer" json:"reviewer_id"`
	Status     AssignmentStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status"`
	Deadline   time.Time        `json:"deadline"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Assignment) TableName() string { return "proposal_reviewer" }

type Rekomendasi string

const (
	RekomendasiDiterima Rekomendasi = "DITERIMA"
	RekomendasiRevisi   Rekomendasi = "REVISI"
	RekomendasiDitolak  Rekomendasi = "DITOLAK"
)

// Review is the completed evaluation for one assignment. Immutable once
// created; a revision round deletes it and resets the assignment instead.
type Review struct {
	ID           string `gorm:"primaryKey;size:32" json:"id"`
	AssignmentID string `gorm:"size:32;uniqueIndex:ux_review_assignment" json:"assignment_id"`
	ReviewerID   string `gorm:"size:32;index" json:"reviewer_id"`

	NilaiKriteria1 int     `json:"nilai_kriteria1"`
	NilaiKriteria2 int     `json:"nilai_kriteria2"`
	NilaiKriteria3 int     `json:"nilai_kriteria3"`
	NilaiKriteria4 int     `json:"nilai_kriteria4"`
	NilaiTotal     float64 `gorm:"type:decimal(6,2)" json:"nilai_total"`

	Rekomendasi Rekomendasi `gorm:"type:varchar(16)" json:"rekomendasi"`
	Catatan     string      `gorm:"type:text" json:"catatan"`
	FilePath    string      `gorm:"type:text" json:"file_path"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Review) TableName() string { return "review" }

// TotalOf computes the stored score: four equally weighted criteria.
func TotalOf(k1, k2, k3, k4 int) float64 {
	return float64(k1)*0.25 + float64(k2)*0.25 + float64(k3)*0.25 + float64(k4)*0.25
}

// Summary is the aggregation contract over one proposal's review round.
type Summary struct {
	Assigned    int     `json:"assigned"`
	Completed   int     `json:"completed"`
	AllComplete bool    `json:"all_complete"`
	Average     float64 `json:"average"`
}

// Summarize folds assignments and their submitted reviews. The average runs
// over submitted reviews only; callers gate decisions on AllComplete.
func Summarize(assignments []Assignment, reviews []Review) Summary {
	s := Summary{Assigned: len(assignments)}
	for _, a := range assignments {
		if a.Status == AssignmentSelesai {
			s.Completed++
		}
	}
	s.AllComplete = s.Assigned > 0 && s.Completed == s.Assigned
	if len(reviews) == 0 {
		return s
	}
	var sum float64
	for _, r := range reviews {
		sum += r.NilaiTotal
	}
	s.Average = sum / float64(len(reviews))
	return s
}
