package proposal

import (
	"fmt"
	"time"

	"lppm-backend/internal/domain/fault"
)

// Event is a lifecycle action that may move a proposal between statuses.
// Guards beyond the current status (file uploaded, periode open, reviews
// complete, ...) are re-validated by the usecase firing the event; the graph
// here is the single authority on which moves are legal at all.
type Event string

const (
	EventSubmit          Event = "SUBMIT"
	EventAdminReject     Event = "ADMIN_CHECK_TIDAK_LOLOS"
	EventAssignReviewers Event = "ASSIGN_REVIEWERS"
	EventApprove         Event = "APPROVE"
	EventReject          Event = "REJECT"
	EventRequestRevision Event = "REQUEST_REVISION"
	EventUploadRevision  Event = "UPLOAD_REVISION"
	EventContractSigned  Event = "CONTRACT_SIGNED"
	EventComplete        Event = "COMPLETE"
)

type transition struct {
	from []Status
	to   Status
}

var transitions = map[Event]transition{
	EventSubmit:          {from: []Status{StatusDraft}, to: StatusDiajukan},
	EventAdminReject:     {from: []Status{StatusDiajukan}, to: StatusRevisi},
	EventAssignReviewers: {from: []Status{StatusDiajukan}, to: StatusDireview},
	EventApprove:         {from: []Status{StatusDireview}, to: StatusDiterima},
	EventReject:          {from: []Status{StatusDireview}, to: StatusDitolak},
	EventRequestRevision: {from: []Status{StatusDireview}, to: StatusRevisi},
	// Revision upload returns to DIREVIEW when reviewers were already
	// assigned; the usecase rewrites the target to DIAJUKAN for
	// administrative revisions (no assignments yet).
	EventUploadRevision: {from: []Status{StatusRevisi}, to: StatusDireview},
	EventContractSigned: {from: []Status{StatusDiterima}, to: StatusBerjalan},
	EventComplete:       {from: []Status{StatusBerjalan}, to: StatusSelesai},
}

// Apply fires ev against p, mutating its status and lifecycle timestamps.
// It fails with a Conflict when the proposal is not in a source status of ev.
func Apply(p *Proposal, ev Event, now time.Time) error {
	tr, ok := transitions[ev]
	if !ok {
		return fault.Conflict(fmt.Sprintf("Aksi %s tidak dikenal", ev))
	}
	allowed := false
	for _, s := range tr.from {
		if p.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return fault.Conflict(fmt.Sprintf("Tidak dapat mengubah status dari %s ke %s", p.Status, tr.to))
	}

	p.Status = tr.to
	switch ev {
	case EventSubmit:
		t := now
		p.SubmittedAt = &t
	case EventApprove:
		t := now
		p.ApprovedAt = &t
	case EventReject:
		t := now
		p.RejectedAt = &t
	}
	return nil
}

// CanFire reports whether ev is legal from the proposal's current status.
func CanFire(p *Proposal, ev Event) bool {
	tr, ok := transitions[ev]
	if !ok {
		return false
	}
	for _, s := range tr.from {
		if p.Status == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no event can ever move the proposal again.
func Terminal(s Status) bool { return s == StatusDitolak || s == StatusSelesai }
