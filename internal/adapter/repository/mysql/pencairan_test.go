package mysql

import (
	"context"
	"sync"
	"testing"

	pencairanDomain "lppm-backend/internal/domain/pencairan"
	"lppm-backend/pkg/id"
)

func tranche(proposalID string, t pencairanDomain.Termin) *pencairanDomain.Pencairan {
	return &pencairanDomain.Pencairan{
		ID:         id.NewID32(),
		ProposalID: proposalID,
		Termin:     t,
		Nominal:    t.Nominal(10_000_000),
		Persentase: t.Persentase(),
		Status:     pencairanDomain.StatusPending,
	}
}

func TestPencairan_CreateIfAbsent_Idempotent(t *testing.T) {
	g := newTestDB(t)
	repo := NewPencairanRepository(g)
	ctx := context.Background()

	pid := id.NewID32()

	created, err := repo.CreateIfAbsent(ctx, tranche(pid, pencairanDomain.Termin1))
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if !created {
		t.Fatalf("first insert should create")
	}

	// same (proposal, termin) again must be a no-op, even with a fresh id
	created, err = repo.CreateIfAbsent(ctx, tranche(pid, pencairanDomain.Termin1))
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if created {
		t.Fatalf("second insert must not create a duplicate")
	}

	list, err := repo.ListByProposalID(ctx, pid)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want exactly 1 tranche row, got %d", len(list))
	}

	// a different termin for the same proposal is a separate row
	created, err = repo.CreateIfAbsent(ctx, tranche(pid, pencairanDomain.Termin2))
	if err != nil || !created {
		t.Fatalf("termin2 insert: created=%v err=%v", created, err)
	}
}

func TestPencairan_GetByProposalTermin_And_Delete(t *testing.T) {
	g := newTestDB(t)
	repo := NewPencairanRepository(g)
	ctx := context.Background()

	pid := id.NewID32()
	if _, err := repo.CreateIfAbsent(ctx, tranche(pid, pencairanDomain.Termin3)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetByProposalTermin(ctx, pid, pencairanDomain.Termin3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Persentase != 25 || got.Nominal != 2_500_000 {
		t.Fatalf("termin3 share mismatch: %d%% / %v", got.Persentase, got.Nominal)
	}

	if err := repo.DeleteByProposalTermin(ctx, pid, pencairanDomain.Termin3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByProposalTermin(ctx, pid, pencairanDomain.Termin3); err == nil {
		t.Fatalf("expected not-found after delete")
	}
}

func TestPencairan_ListByTerminStatus(t *testing.T) {
	g := newTestDB(t)
	repo := NewPencairanRepository(g)
	ctx := context.Background()

	p1 := tranche(id.NewID32(), pencairanDomain.Termin1)
	p1.Status = pencairanDomain.StatusDicairkan
	p2 := tranche(id.NewID32(), pencairanDomain.Termin1)

	for _, p := range []*pencairanDomain.Pencairan{p1, p2} {
		if _, err := repo.CreateIfAbsent(ctx, p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := repo.ListByTerminStatus(ctx, pencairanDomain.Termin1, pencairanDomain.StatusDicairkan)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != p1.ID {
		t.Fatalf("want only the disbursed row, got %+v", got)
	}
}

func TestPencairan_CreateIfAbsent_Concurrent(t *testing.T) {
	g := newTestDB(t)
	repo := NewPencairanRepository(g)
	ctx := context.Background()

	pid := id.NewID32()
	const callers = 8

	var wg sync.WaitGroup
	results := make(chan bool, callers)
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.CreateIfAbsent(ctx, tranche(pid, pencairanDomain.Termin2))
			if err != nil {
				errs <- err
				return
			}
			results <- created
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent insert: %v", err)
	}
	wins := 0
	for created := range results {
		if created {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("%d callers created a row, want exactly 1", wins)
	}
	list, err := repo.ListByProposalID(ctx, pid)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want exactly 1 tranche row, got %d", len(list))
	}
}
