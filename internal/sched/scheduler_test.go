package sched

import (
	"context"
	"testing"
	"time"

	"github.com/dkostenko/aide/tests/testutil"
)

func TestCheckDueIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t)
	s := New(st, false)

	now := time.Now().UTC()
	if _, err := st.AddReminder(ctx, "overdue", now.Add(-time.Hour)); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	first, err := s.CheckDue(ctx, now)
	if err != nil {
		t.Fatalf("check due: %v", err)
	}
	second, err := s.CheckDue(ctx, now)
	if err != nil {
		t.Fatalf("check due again: %v", err)
	}

	// Nothing was marked fired, so the same reminders come back.
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestFireAndPruneRetainsByDefault(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t)
	s := New(st, false)

	now := time.Now().UTC()
	if _, err := st.AddReminder(ctx, "overdue", now.Add(-time.Hour)); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	due, err := s.CheckDue(ctx, now)
	if err != nil {
		t.Fatalf("check due: %v", err)
	}
	if err := s.FireAndPrune(ctx, due); err != nil {
		t.Fatalf("fire and prune: %v", err)
	}

	after, err := s.CheckDue(ctx, now)
	if err != nil {
		t.Fatalf("check due after firing: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("fired reminder reported again: %+v", after)
	}

	// Retained, just fired.
	all, err := st.ListReminders(ctx)
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(all) != 1 || !all[0].Fired {
		t.Errorf("expected one fired reminder retained, got %+v", all)
	}
}

func TestFireAndPruneDeletesWhenConfigured(t *testing.T) {
	ctx := context.Background()
	st := testutil.NewTestStore(t)
	s := New(st, true)

	now := time.Now().UTC()
	if _, err := st.AddReminder(ctx, "overdue", now.Add(-time.Hour)); err != nil {
		t.Fatalf("add reminder: %v", err)
	}

	due, err := s.CheckDue(ctx, now)
	if err != nil {
		t.Fatalf("check due: %v", err)
	}
	if err := s.FireAndPrune(ctx, due); err != nil {
		t.Fatalf("fire and prune: %v", err)
	}

	all, err := st.ListReminders(ctx)
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected reminder pruned, got %+v", all)
	}
}
