package review

import "testing"

func TestTotalOf_EqualWeights(t *testing.T) {
	if got := TotalOf(80, 80, 80, 80); got != 80 {
		t.Fatalf("TotalOf = %v, want 80", got)
	}
	if got := TotalOf(100, 90, 80, 70); got != 85 {
		t.Fatalf("TotalOf = %v, want 85", got)
	}
}

func TestSummarize_TwoCompleted(t *testing.T) {
	asg := []Assignment{
		{ID: "a1", Status: AssignmentSelesai},
		{ID: "a2", Status: AssignmentSelesai},
	}
	revs := []Review{{NilaiTotal: 80}, {NilaiTotal: 90}}
	s := Summarize(asg, revs)
	if !s.AllComplete {
		t.Fatal("AllComplete = false")
	}
	if s.Assigned != 2 || s.Completed != 2 {
		t.Fatalf("assigned=%d completed=%d", s.Assigned, s.Completed)
	}
	if s.Average != 85 {
		t.Fatalf("average = %v, want 85", s.Average)
	}
}

func TestSummarize_PendingBlocksCompletion(t *testing.T) {
	asg := []Assignment{
		{ID: "a1", Status: AssignmentSelesai},
		{ID: "a2", Status: AssignmentPending},
	}
	s := Summarize(asg, []Review{{NilaiTotal: 77}})
	if s.AllComplete {
		t.Fatal("AllComplete must be false with a pending assignment")
	}
	if s.Completed != 1 {
		t.Fatalf("completed = %d", s.Completed)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.AllComplete {
		t.Fatal("no assignments can never be complete")
	}
	if s.Average != 0 {
		t.Fatalf("average = %v", s.Average)
	}
}
